package command

import (
	"context"
	"sync"

	"github.com/napalu/chatopt/logging"
)

type recordingReplier struct {
	mu      sync.Mutex
	channel []Reply
	dm      []Reply
}

func (r *recordingReplier) Send(ctx context.Context, reply Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channel = append(r.channel, reply)
	return nil
}

func (r *recordingReplier) SendDM(ctx context.Context, reply Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dm = append(r.dm, reply)
	return nil
}

func (r *recordingReplier) contents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, reply := range r.channel {
		if reply.Content != "" {
			out = append(out, reply.Content)
		}
		for _, e := range reply.Embeds {
			out = append(out, "embed:"+e.Title)
		}
	}
	return out
}

type fakeCommand struct {
	Base
	run  func(ctx context.Context, inv *Invocation) error
	seen [][]string
	mu   sync.Mutex
}

func newFakeCommand(aliases ...string) *fakeCommand {
	return &fakeCommand{Base: NewBase("fake command", aliases...)}
}

func (c *fakeCommand) Execute(ctx context.Context, inv *Invocation) error {
	c.mu.Lock()
	c.seen = append(c.seen, inv.Args)
	c.mu.Unlock()
	if c.run != nil {
		return c.run(ctx, inv)
	}
	return nil
}

func (c *fakeCommand) Describe(prefix string) Reply {
	return WithEmbed(&Embed{Title: c.Aliases()[0]})
}

func testInvocation(args ...string) *Invocation {
	return &Invocation{
		ID:      "test",
		Prefix:  "!",
		Alias:   args[0],
		Args:    args,
		Message: &Message{Author: &Member{UserID: "1"}},
		Replier: &recordingReplier{},
		Logger:  logging.Discard(),
	}
}

package commands

import (
	"context"

	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/logging"
)

type recordingReplier struct {
	channel []command.Reply
	dm      []command.Reply
}

func (r *recordingReplier) Send(ctx context.Context, reply command.Reply) error {
	r.channel = append(r.channel, reply)
	return nil
}

func (r *recordingReplier) SendDM(ctx context.Context, reply command.Reply) error {
	r.dm = append(r.dm, reply)
	return nil
}

var testGuild = &command.Guild{
	ID:      "g1",
	Name:    "umbrella",
	OwnerID: "owner",
	Roles:   map[string]string{"1": "admin", "2": "mod", "3": "helper"},
}

func invocation(author *command.Member, args ...string) (*command.Invocation, *recordingReplier) {
	replier := &recordingReplier{}
	return &command.Invocation{
		ID:      "test",
		Prefix:  "!",
		Alias:   args[0],
		Args:    args,
		Message: &command.Message{Author: author, Guild: testGuild},
		Replier: replier,
		Logger:  logging.Discard(),
	}, replier
}

func fieldNames(e command.Embed) []string {
	var names []string
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	return names
}

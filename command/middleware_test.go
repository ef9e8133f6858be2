package command

import (
	"context"
	"testing"

	"github.com/napalu/chatopt/errs"
	"github.com/stretchr/testify/assert"
)

func TestWrappedCommand_DelegatesWithoutWrap(t *testing.T) {
	cmd := newFakeCommand("x")
	w := &WrappedCommand{Command: cmd}
	assert.NoError(t, w.Execute(context.Background(), testInvocation("x")))
	assert.Len(t, cmd.seen, 1)
	assert.Equal(t, []string{"x"}, w.Aliases())
}

func TestWithUserErrorReply_ParseErrors(t *testing.T) {
	cmd := newFakeCommand("help", "h")
	cmd.run = func(ctx context.Context, inv *Invocation) error {
		return errs.UnknownShortOption("z")
	}
	inv := testInvocation("h", "-z")

	err := ApplyMiddlewares(cmd, WithUserErrorReply()).Execute(context.Background(), inv)
	assert.NoError(t, err)
	assert.Equal(t, []string{"help: Unknown option `-z`.", "embed:help"}, inv.Replier.(*recordingReplier).contents())
}

func TestBase_Allowed(t *testing.T) {
	b := NewBase("x", "x")
	b.Perms.DenyByDefault().AllowRole("r1")

	inv := testInvocation("x")
	assert.False(t, b.Allowed(inv))
	inv.Message.Author.Roles = []string{"r1"}
	assert.True(t, b.Allowed(inv))

	inv.Message = nil
	assert.False(t, b.Allowed(inv))

	open := Base{}
	assert.True(t, open.Allowed(inv))
}

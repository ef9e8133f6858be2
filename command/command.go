// Package command dispatches chat messages to commands.
//
// A message starting with the configured prefix names a command by one of its aliases. The
// Dispatcher checks the permissions of the author, runs the command and reports user errors
// back to the channel followed by the description of the command.
package command

import (
	"context"
	"log/slog"

	"github.com/napalu/chatopt/permissions"
)

// Command is a chat command
type Command interface {
	// Aliases returns the names the command is invoked by. The first one is its display name.
	Aliases() []string
	// Description is a one-line summary for the help command
	Description() string
	// Hidden commands are left out of help
	Hidden() bool
	Permissions() *permissions.Permissions
	// Allowed reports whether the author of inv may run the command
	Allowed(inv *Invocation) bool
	Execute(ctx context.Context, inv *Invocation) error
	// Describe returns the full description of the command, shown by help and after a user error
	Describe(prefix string) Reply
}

// Replier delivers replies for a message
type Replier interface {
	// Send replies in the channel of the message
	Send(ctx context.Context, reply Reply) error
	// SendDM replies in a direct message to the author
	SendDM(ctx context.Context, reply Reply) error
}

// Invocation is a single execution of a command
type Invocation struct {
	// ID is unique per dispatched message
	ID      string
	Prefix  string
	Alias   string
	Args    []string
	Message *Message
	Replier Replier
	Logger  *slog.Logger
}

// Reply sends reply in the channel of the message
func (inv *Invocation) Reply(ctx context.Context, reply Reply) error {
	return inv.Replier.Send(ctx, reply)
}

// ReplyDM sends reply to the author of the message
func (inv *Invocation) ReplyDM(ctx context.Context, reply Reply) error {
	return inv.Replier.SendDM(ctx, reply)
}

// Base implements the descriptive part of Command. Embed it and provide Execute and Describe.
type Base struct {
	Names   []string
	Summary string
	Secret  bool
	Perms   *permissions.Permissions
}

// NewBase creates a Base with permissions allowing everyone
func NewBase(summary string, aliases ...string) Base {
	return Base{
		Names:   aliases,
		Summary: summary,
		Perms:   permissions.New(),
	}
}

// Aliases returns Names
func (b *Base) Aliases() []string {
	return b.Names
}

// Description returns Summary
func (b *Base) Description() string {
	return b.Summary
}

// Hidden returns Secret
func (b *Base) Hidden() bool {
	return b.Secret
}

// Permissions returns Perms
func (b *Base) Permissions() *permissions.Permissions {
	return b.Perms
}

// Allowed checks the author of inv against Permissions
func (b *Base) Allowed(inv *Invocation) bool {
	if b.Perms == nil {
		return true
	}
	if inv.Message == nil || inv.Message.Author == nil {
		return b.Perms.HasPermission(nil)
	}

	return b.Perms.HasPermission(inv.Message.Author)
}

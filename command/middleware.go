package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/napalu/chatopt/errs"
)

// Middleware is a function that wraps a command
type Middleware func(Command) Command

// WrappedCommand represents a command wrapped with a middleware
type WrappedCommand struct {
	Command
	Wrap func(ctx context.Context, inv *Invocation) error
}

// Execute runs Wrap, or the wrapped command when Wrap is nil
func (w *WrappedCommand) Execute(ctx context.Context, inv *Invocation) error {
	if w.Wrap != nil {
		return w.Wrap(ctx, inv)
	}
	return w.Command.Execute(ctx, inv)
}

// ApplyMiddlewares wraps a command with any number of middlewares. The last one runs first.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithPermissionCheck replies with errs.ErrPermissionDenied instead of running the command when
// the author is not allowed to
func WithPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx context.Context, inv *Invocation) error {
				if !cmd.Allowed(inv) {
					inv.Logger.Info("permission denied", "command", cmd.Aliases()[0])
					return inv.Reply(ctx, Text(errs.ErrPermissionDenied.Error()))
				}
				return cmd.Execute(ctx, inv)
			},
		}
	}
}

// WithUserErrorReply reports parse and user errors to the channel as "<name>: <message>",
// followed by the description of the command. Other errors are returned unchanged.
func WithUserErrorReply() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx context.Context, inv *Invocation) error {
				err := cmd.Execute(ctx, inv)
				if err == nil || !errs.IsUserError(err) {
					return err
				}
				inv.Logger.Debug("user error", "command", cmd.Aliases()[0], "error", err)
				if err := inv.Reply(ctx, Text(fmt.Sprintf("%s: %s", cmd.Aliases()[0], err))); err != nil {
					return err
				}
				return inv.Reply(ctx, cmd.Describe(inv.Prefix))
			},
		}
	}
}

// WithLogging logs the outcome and duration of every execution
func WithLogging() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx context.Context, inv *Invocation) error {
				start := time.Now()
				err := cmd.Execute(ctx, inv)
				attrs := []any{
					"command", cmd.Aliases()[0],
					"alias", inv.Alias,
					"duration", time.Since(start),
				}
				if err != nil {
					inv.Logger.Error("command failed", append(attrs, "error", err)...)
				} else {
					inv.Logger.Debug("command done", attrs...)
				}
				return err
			},
		}
	}
}

// WithArgsDebug logs the tokens every command receives
func WithArgsDebug() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx context.Context, inv *Invocation) error {
				inv.Logger.Debug("args", slog.Any("args", inv.Args))
				return cmd.Execute(ctx, inv)
			},
		}
	}
}

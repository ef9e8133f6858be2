package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/internal/parse"
)

// DefaultPrefix is used when no prefix is configured
const DefaultPrefix = "!"

// Dispatcher routes messages to the commands of a Registry
type Dispatcher struct {
	registry    *Registry
	prefix      string
	fallback    string
	quoting     bool
	middlewares []Middleware
	logger      *slog.Logger
	newID       func() string
}

// NewDispatcher creates a Dispatcher for registry. The caller should always test for error on
// return because Dispatcher will be nil when an error occurs during initialization.
func NewDispatcher(registry *Registry, configs ...ConfigureDispatcherFunc) (*Dispatcher, error) {
	if registry == nil {
		return nil, errs.ErrNilAction.WithArgs("registry")
	}
	d := &Dispatcher{
		registry: registry,
		prefix:   DefaultPrefix,
		logger:   slog.Default(),
		newID:    uuid.NewString,
	}

	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Prefix returns the prefix marking a message as a command
func (d *Dispatcher) Prefix() string {
	return d.prefix
}

// Dispatch runs the command named by msg. Messages without the prefix and messages written by
// bots are ignored. Unknown commands are reported and the fallback command, if any, runs with
// the same arguments. User errors are reported to the channel; any other error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message, replier Replier) error {
	if msg == nil || msg.Author == nil || msg.Author.Bot || !strings.HasPrefix(msg.Content, d.prefix) {
		return nil
	}

	args, err := d.tokenize(msg.Content)
	id := d.newID()
	logger := d.logger.With("invocation", id, "user", msg.Author.ID())
	if err != nil {
		logger.Debug("tokenize failed", "error", err)
		return replier.Send(ctx, Text(err.Error()))
	}
	if len(args) == 0 {
		return nil
	}
	args[0] = strings.TrimPrefix(args[0], d.prefix)

	inv := &Invocation{
		ID:      id,
		Prefix:  d.prefix,
		Alias:   args[0],
		Args:    args,
		Message: msg,
		Replier: replier,
		Logger:  logger,
	}

	cmd, found := d.registry.Get(args[0])
	if !found {
		logger.Info("unknown command", "alias", args[0])
		if err := replier.Send(ctx, Text(errs.ErrUnknownCommand.WithArgs(d.prefix+args[0]).Error())); err != nil {
			return err
		}
		if cmd, found = d.registry.Get(d.fallback); !found || d.fallback == "" {
			return nil
		}
	}

	return d.wrap(cmd).Execute(ctx, inv)
}

func (d *Dispatcher) tokenize(content string) ([]string, error) {
	if !d.quoting {
		return parse.Fields(content), nil
	}
	tokens, err := parse.Split(content)
	if err != nil {
		return nil, errs.IllegalArgument(content)
	}

	return tokens, nil
}

func (d *Dispatcher) wrap(cmd Command) Command {
	mws := make([]Middleware, 0, len(d.middlewares)+3)
	mws = append(mws, d.middlewares...)
	mws = append(mws, WithUserErrorReply(), WithPermissionCheck(), WithLogging())

	return ApplyMiddlewares(cmd, mws...)
}

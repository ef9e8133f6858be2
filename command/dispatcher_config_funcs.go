package command

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/napalu/chatopt/errs"
)

// ConfigureDispatcherFunc is used when calling NewDispatcher
type ConfigureDispatcherFunc func(d *Dispatcher, err *error)

// WithPrefix sets the prefix marking a message as a command
func WithPrefix(prefix string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		if prefix == "" || strings.IndexFunc(prefix, unicode.IsSpace) >= 0 {
			*err = errs.ErrInvalidConfig.WithArgs("prefix must be non-empty and contain no whitespace")
			return
		}
		d.prefix = prefix
	}
}

// WithFallback names the command run after an unknown command was reported
func WithFallback(alias string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.fallback = alias
	}
}

// WithQuotedArgs makes quotes group words into a single argument
func WithQuotedArgs(quoting bool) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.quoting = quoting
	}
}

// WithMiddleware adds middlewares running inside the built-in permission and error handling, so
// they only see allowed authors and their user errors are replied to. The first one is innermost.
func WithMiddleware(mws ...Middleware) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.middlewares = append(d.middlewares, mws...)
	}
}

// WithLogger sets the logger every invocation logger derives from
func WithLogger(logger *slog.Logger) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		if logger == nil {
			*err = errs.ErrNilAction.WithArgs("logger")
			return
		}
		d.logger = logger
	}
}

// WithIDGenerator replaces the invocation id generator
func WithIDGenerator(newID func() string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		if newID == nil {
			*err = errs.ErrNilAction.WithArgs("id generator")
			return
		}
		d.newID = newID
	}
}

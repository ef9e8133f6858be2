package chatopt

import (
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/types"
)

// NewOpt creates an Option using option functions. Without AsFlag the option is a valued option
// of arity types.ArityNone. The result is validated exactly like NewOption and NewFlag.
//
// Usage example:
//
//	opt, err := NewOpt(
//	    WithShort("m"),
//	    WithLong("members"),
//	    WithArity(types.ArityMany),
//	    WithDescription("members to mention"),
//	)
func NewOpt(configs ...ConfigureOptionFunc) (*Option, error) {
	o := &Option{kind: kindValued}
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return nil, err
		}
	}
	if err = o.validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// WithShort sets the single-character identity matched by -x
func WithShort(short string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.short = short
	}
}

// WithLong sets the identity matched by --name
func WithLong(long string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.long = long
	}
}

// WithDescription sets the text used in help output
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.description = description
	}
}

// WithArity sets the number of tokens a valued option consumes. Ignored for flags.
func WithArity(arity types.Arity) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		*err = option.SetArity(arity)
	}
}

// WithAction sets the action invoked with the consumed values
func WithAction(action ActionFunc) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if action == nil {
			*err = errs.ErrNilAction.WithArgs("option action")
			return
		}
		option.action = action
	}
}

// AsFlag turns the option into a flag. Any arity or action configured before is dropped.
func AsFlag() ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.kind = kindFlag
		option.arity = types.ArityNone
		option.action = nil
	}
}

// WithBinding turns the option into a flag bound to target (see BindFlag)
func WithBinding(target *bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if target == nil {
			*err = errs.ErrNilAction.WithArgs("flag target")
			return
		}
		AsFlag()(option, err)
		option.bound = target
	}
}

package chatopt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/types"
)

// Option is a registered recognizer for a short (-x) and/or long (--name) command-line option.
//
// An Option is either a flag, which never consumes values and only records that it was seen,
// or a valued option with an arity and an optional action. Options are descriptors: matching
// them does not change them, with the exception of flags created by BindFlag which write to
// the caller's variable.
type Option struct {
	short       string
	long        string
	description string
	kind        optionKind
	arity       types.Arity
	action      ActionFunc
	bound       *bool
}

// NewFlag creates a flag. At least one of short and long must be non-empty.
func NewFlag(short, long string) (*Option, error) {
	o := &Option{short: short, long: long, kind: kindFlag}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// BindFlag creates a flag which sets *target to true whenever it is matched. Reset (or
// Parser.ResetFlags) sets it back to false.
//
// A bound flag shares target between every Parse call of the Parser owning it: the caller must
// read and reset target before the Parser is used again. Prefer reading Result.Flag, which has no
// shared state.
func BindFlag(target *bool, short, long string) (*Option, error) {
	if target == nil {
		return nil, errs.ErrNilAction.WithArgs("flag target")
	}
	o, err := NewFlag(short, long)
	if err != nil {
		return nil, err
	}
	o.bound = target

	return o, nil
}

// NewOption creates a valued option. action may be nil, in which case the consumed values are
// only available from the Result.
func NewOption(short, long string, arity types.Arity, action ActionFunc) (*Option, error) {
	o := &Option{short: short, long: long, kind: kindValued, arity: arity, action: action}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Short returns the short identity (without '-'), or "" when the option is long-only
func (o *Option) Short() string {
	return o.short
}

// Long returns the long identity (without '--'), or "" when the option is short-only
func (o *Option) Long() string {
	return o.long
}

// Name returns the long identity if present, the short one otherwise
func (o *Option) Name() string {
	if o.long != "" {
		return o.long
	}

	return o.short
}

// Description returns the help text of the option
func (o *Option) Description() string {
	return o.description
}

// IsFlag reports whether the option is a flag
func (o *Option) IsFlag() bool {
	return o.kind == kindFlag
}

// Arity returns the number of tokens the option consumes. Always types.ArityNone for flags.
func (o *Option) Arity() types.Arity {
	if o.kind == kindFlag {
		return types.ArityNone
	}

	return o.arity
}

// SetArity changes the arity of a valued option. It is a no-op for flags.
// It must not be called once the option is registered with a Parser in use.
func (o *Option) SetArity(arity types.Arity) error {
	if o.kind == kindFlag {
		return nil
	}
	if !arity.Valid() {
		return errs.ErrInvalidArity.WithArgs(int(arity))
	}
	o.arity = arity

	return nil
}

// OnMatch is called by the Parser with the values consumed for the option. Flags record the
// match in their bound variable, if any, and ignore values. Valued options invoke their action.
func (o *Option) OnMatch(values ...string) error {
	if o.kind == kindFlag {
		if o.bound != nil {
			*o.bound = true
		}
		return nil
	}
	if o.action == nil {
		return nil
	}

	return o.action(values...)
}

// Reset restores the bound variable of a flag to false. It is a no-op for other options.
func (o *Option) Reset() {
	if o.kind == kindFlag && o.bound != nil {
		*o.bound = false
	}
}

// String returns the usage form of the option, e.g. "-l, --long"
func (o *Option) String() string {
	return strings.Join(o.identities(), ", ")
}

func (o *Option) identities() []string {
	ids := make([]string, 0, 2)
	if o.short != "" {
		ids = append(ids, shortPrefix+o.short)
	}
	if o.long != "" {
		ids = append(ids, longPrefix+o.long)
	}

	return ids
}

func (o *Option) validate() error {
	if o.short == "" && o.long == "" {
		return errs.ErrInvalidOption.WithArgs()
	}
	if o.short != "" {
		r, size := utf8.DecodeRuneInString(o.short)
		if size != len(o.short) || r == utf8.RuneError || r == '-' || unicode.IsSpace(r) {
			return errs.ErrInvalidShortOption.WithArgs(o.short)
		}
	}
	if o.long != "" {
		// a single character always names a short option
		if utf8.RuneCountInString(o.long) < 2 || strings.HasPrefix(o.long, shortPrefix) ||
			strings.IndexFunc(o.long, unicode.IsSpace) >= 0 {
			return errs.ErrInvalidLongOption.WithArgs(o.long)
		}
	}
	if o.kind == kindValued && !o.arity.Valid() {
		return errs.ErrInvalidArity.WithArgs(int(o.arity))
	}

	return nil
}

// matches reports whether name identifies o. Single-character names are compared with the short
// identity, longer names with the long identity.
func (o *Option) matches(name string) bool {
	if name == "" {
		return false
	}
	if utf8.RuneCountInString(name) == 1 {
		return o.short == name
	}

	return o.long == name
}

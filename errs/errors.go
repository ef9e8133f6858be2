package errs

import (
	"errors"
	"fmt"
)

// Class groups errors by who is expected to act on them
type Class int

const (
	// ClassDefect denotes misuse of the API or a broken configuration. Never shown to chat users.
	ClassDefect Class = iota
	// ClassParse denotes malformed command input detected by the parser
	ClassParse
	// ClassUser denotes a problem with the input detected by a command
	ClassUser
)

// Error is an error identified by a message key, with optional format arguments
// and error wrapping support.
//
// Every kind of error is declared once as a sentinel (see ErrUnknownShortOption et al.).
// Instances carrying data are derived with WithArgs and still satisfy errors.Is against
// their sentinel:
//
//	err := errs.ErrUnknownShortOption.WithArgs("z")
//	errors.Is(err, errs.ErrUnknownShortOption) // true
type Error struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	key      string
	class    Class
	args     []interface{}
	wrapped  error
	// nil means the package default provider is consulted on every call to Error
	provider MessageProvider
}

// NewError creates a new sentinel error of the given class
func NewError(key string, class Class) *Error {
	return &Error{
		sentinel: errors.New(key),
		key:      key,
		class:    class,
	}
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	provider := e.provider
	if provider == nil {
		provider = getDefaultProvider()
	}

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	c := *e
	c.args = args

	return &c
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.wrapped = err

	return &c
}

// WithProvider returns a copy of the error rendered by provider instead of the package default
func (e *Error) WithProvider(provider MessageProvider) *Error {
	c := *e
	c.provider = provider

	return &c
}

// Is implements errors.Is for comparison with the sentinel error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the message key
func (e *Error) Key() string {
	return e.key
}

// Class returns the class of the error
func (e *Error) Class() Class {
	return e.class
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Parse errors
var (
	ErrWrongArgNumber     = NewError(ErrWrongArgNumberKey, ClassParse)
	ErrIllegalArgument    = NewError(ErrIllegalArgumentKey, ClassParse)
	ErrUnknownShortOption = NewError(ErrUnknownShortOptionKey, ClassParse)
	ErrUnknownLongOption  = NewError(ErrUnknownLongOptionKey, ClassParse)
	ErrOptionArgInMiddle  = NewError(ErrOptionArgInMiddleKey, ClassParse)
)

// User errors
var (
	ErrCommandNotFound   = NewError(ErrCommandNotFoundKey, ClassUser)
	ErrUnknownCommand    = NewError(ErrUnknownCommandKey, ClassUser)
	ErrRoleAlreadyLinked = NewError(ErrRoleAlreadyLinkedKey, ClassUser)
	ErrRoleCycle         = NewError(ErrRoleCycleKey, ClassUser)
	ErrPermissionDenied  = NewError(ErrPermissionDeniedKey, ClassUser)
)

// Registration and configuration errors
var (
	ErrInvalidOption      = NewError(ErrInvalidOptionKey, ClassDefect)
	ErrInvalidShortOption = NewError(ErrInvalidShortOptionKey, ClassDefect)
	ErrInvalidLongOption  = NewError(ErrInvalidLongOptionKey, ClassDefect)
	ErrInvalidArity       = NewError(ErrInvalidArityKey, ClassDefect)
	ErrNilAction          = NewError(ErrNilActionKey, ClassDefect)
	ErrDuplicateAlias     = NewError(ErrDuplicateAliasKey, ClassDefect)
	ErrInvalidConfig      = NewError(ErrInvalidConfigKey, ClassDefect)
)

// WrongArgNumber returns a wrong argument count error
func WrongArgNumber() error {
	return ErrWrongArgNumber.WithArgs()
}

// IllegalArgument returns an error rejecting value
func IllegalArgument(value string) error {
	return ErrIllegalArgument.WithArgs(value)
}

// UnknownShortOption returns an error for the unregistered short option char
func UnknownShortOption(char string) error {
	return ErrUnknownShortOption.WithArgs(char)
}

// UnknownLongOption returns an error for the unregistered long option name
func UnknownLongOption(name string) error {
	return ErrUnknownLongOption.WithArgs(name)
}

// OptionArgInMiddle returns an error for a short option requiring arguments which is not
// the last character of group
func OptionArgInMiddle(char, group string) error {
	return ErrOptionArgInMiddle.WithArgs(char, group)
}

// ClassOf returns the class of the first *Error in err's chain. ok is false when err does not
// contain an *Error.
func ClassOf(err error) (class Class, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.class, true
	}

	return ClassDefect, false
}

// IsParseError reports whether err is one of the parse error variants
func IsParseError(err error) bool {
	c, ok := ClassOf(err)
	return ok && c == ClassParse
}

// IsUserError reports whether err should be reported to the user who issued the command,
// i.e. it is a parse error or a user error
func IsUserError(err error) bool {
	c, ok := ClassOf(err)
	return ok && (c == ClassParse || c == ClassUser)
}

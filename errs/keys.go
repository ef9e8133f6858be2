// Package errs contains the error values produced by chatopt and the command framework built on it.
// This file contains the message keys used to look up the text of every error.
package errs

// Prefix for all chatopt message keys
const (
	prefixKey = "chatopt"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	UserErrorPathKey  = ErrorPrefixKey + ".user"
)

// Parse errors describe malformed command input
const (
	ErrWrongArgNumberKey     = ParseErrorPathKey + ".wrong_arg_number"
	ErrIllegalArgumentKey    = ParseErrorPathKey + ".illegal_argument"
	ErrUnknownShortOptionKey = ParseErrorPathKey + ".unknown_short_option"
	ErrUnknownLongOptionKey  = ParseErrorPathKey + ".unknown_long_option"
	ErrOptionArgInMiddleKey  = ParseErrorPathKey + ".option_arg_in_middle"
)

// User errors are raised by commands and shown to the invoking user
const (
	ErrCommandNotFoundKey   = UserErrorPathKey + ".command_not_found"
	ErrUnknownCommandKey    = UserErrorPathKey + ".unknown_command"
	ErrRoleAlreadyLinkedKey = UserErrorPathKey + ".role_already_linked"
	ErrRoleCycleKey         = UserErrorPathKey + ".role_cycle"
	ErrPermissionDeniedKey  = UserErrorPathKey + ".permission_denied"
)

// Registration and configuration errors signal programming or deployment defects
const (
	ErrInvalidOptionKey      = ErrorPrefixKey + ".invalid_option"
	ErrInvalidShortOptionKey = ErrorPrefixKey + ".invalid_short_option"
	ErrInvalidLongOptionKey  = ErrorPrefixKey + ".invalid_long_option"
	ErrInvalidArityKey       = ErrorPrefixKey + ".invalid_arity"
	ErrNilActionKey          = ErrorPrefixKey + ".nil_action"
	ErrDuplicateAliasKey     = ErrorPrefixKey + ".duplicate_alias"
	ErrInvalidConfigKey      = ErrorPrefixKey + ".invalid_config"
)

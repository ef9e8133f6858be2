package chatopt

// ActionFunc is invoked with the tokens consumed by a matched valued Option: none for
// types.ArityNone, exactly one for types.ArityOne and zero or more for types.ArityMany.
// A non-nil error aborts Parse and is returned unchanged.
type ActionFunc func(values ...string) error

// TerminalFunc is invoked once per successful Parse with the positional tokens, i.e. every
// token which was neither an option nor consumed as an option value. It is the place to
// validate the positional count (return errs.WrongArgNumber()).
type TerminalFunc func(positional ...string) error

// ConfigureParserFunc is used when defining a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when defining an Option with NewOpt
type ConfigureOptionFunc func(option *Option, err *error)

type optionKind int

const (
	kindValued optionKind = iota
	kindFlag
)

const (
	shortPrefix = "-"
	longPrefix  = "--"
)

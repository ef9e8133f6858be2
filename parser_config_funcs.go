package chatopt

import "github.com/napalu/chatopt/types"

// WithOption is a wrapper for AddOption
func WithOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(option)
	}
}

// WithFlag is a wrapper for CreateFlag
func WithFlag(short, long string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		_, *err = parser.CreateFlag(short, long)
	}
}

// WithBoundFlag creates a flag bound to target (see BindFlag) and adds it to the parser
func WithBoundFlag(target *bool, short, long string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		var o *Option
		if o, *err = BindFlag(target, short, long); *err == nil {
			*err = parser.AddOption(o)
		}
	}
}

// WithValued is a wrapper for CreateOption
func WithValued(short, long string, arity types.Arity, action ActionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		_, *err = parser.CreateOption(short, long, arity, action)
	}
}

// WithTerminalAction is a wrapper for SetTerminalAction
func WithTerminalAction(action TerminalFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetTerminalAction(action)
	}
}

// WithQuoting is a wrapper for SetQuoting
func WithQuoting(quoting bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetQuoting(quoting)
	}
}

package chatopt

import (
	"strings"

	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/internal/parse"
	"github.com/napalu/chatopt/types"
)

func (p *Parser) snapshot() ([]*Option, TerminalFunc) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]*Option(nil), p.options...), p.terminal
}

func (p *Parser) evalToken(state *parse.State, options []*Option, res *Result) error {
	arg := state.CurrentArg()
	switch {
	case strings.HasPrefix(arg, longPrefix):
		return p.parseLongOption(state, options, res)
	case strings.HasPrefix(arg, shortPrefix):
		return p.parseShortGroup(state, options, res)
	default:
		res.positional = append(res.positional, arg)
	}

	return nil
}

func (p *Parser) parseLongOption(state *parse.State, options []*Option, res *Result) error {
	name := strings.TrimPrefix(state.CurrentArg(), longPrefix)
	opt := findLong(options, name)
	if opt == nil {
		return errs.UnknownLongOption(name)
	}

	return p.processOption(state, opt, res)
}

// parseShortGroup handles a token such as -abc. Options consuming values take them from the tokens
// following the group, so they are only accepted as the last character.
func (p *Parser) parseShortGroup(state *parse.State, options []*Option, res *Result) error {
	group := state.CurrentArg()
	chars := []rune(strings.TrimPrefix(group, shortPrefix))
	for i, r := range chars {
		char := string(r)
		opt := findShort(options, char)
		if opt == nil {
			return errs.UnknownShortOption(char)
		}
		if opt.Arity() != types.ArityNone && i < len(chars)-1 {
			return errs.OptionArgInMiddle(char, group)
		}
		if err := p.processOption(state, opt, res); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) processOption(state *parse.State, opt *Option, res *Result) error {
	values, err := consumeValues(state, opt.Arity())
	if err != nil {
		return err
	}
	res.record(opt, values)

	return opt.OnMatch(values...)
}

func consumeValues(state *parse.State, arity types.Arity) ([]string, error) {
	values := []string{}
	switch arity {
	case types.ArityOne:
		if !state.Advance() {
			return nil, errs.WrongArgNumber()
		}
		values = append(values, state.CurrentArg())
	case types.ArityMany:
		for {
			next, ok := state.Peek()
			if !ok || strings.HasPrefix(next, shortPrefix) {
				break
			}
			state.Advance()
			values = append(values, next)
		}
	}

	return values, nil
}

func findShort(options []*Option, char string) *Option {
	for _, o := range options {
		if o.short == char {
			return o
		}
	}

	return nil
}

func findLong(options []*Option, name string) *Option {
	if name == "" {
		return nil
	}
	for _, o := range options {
		if o.long == name {
			return o
		}
	}

	return nil
}

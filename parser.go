// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package chatopt provides argument parsing for chat-bot commands.
//
// A command line is a list of tokens whose first element is the command name. The remaining tokens
// are classified as:
//
//	--name  a long option
//	-xyz    a group of short options x, y and z
//	other   a positional argument
//
// Options consume trailing tokens according to their types.Arity: none, exactly the next token, or
// every token up to the next one starting with '-'. An option consuming tokens may only appear as the
// last character of a short option group.
//
// Parse returns an immutable Result per call, so a single Parser built when a command is defined can
// serve concurrent invocations of that command.
package chatopt

import (
	"sync"

	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/internal/parse"
	"github.com/napalu/chatopt/types"
)

// Parser holds an ordered list of options and the terminal action receiving positional arguments
type Parser struct {
	mu       sync.RWMutex
	options  []*Option
	terminal TerminalFunc
	quoting  bool
}

// NewParser creates a Parser without options whose terminal action accepts any positional arguments
func NewParser() *Parser {
	return &Parser{
		options: []*Option{},
	}
}

// NewParserWith allows initialization of Parser using option functions. The caller should always test
// for error on return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithFlag("l", "long"),
//		WithFlag("d", "dm"),
//		WithValued("m", "mention", types.ArityMany, nil),
//		WithTerminalAction(func(positional ...string) error {
//			if len(positional) > 1 {
//				return errs.WrongArgNumber()
//			}
//			return nil
//		}))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AddOption appends option to the registry. When several options share an identity the first one
// registered is matched.
func (p *Parser) AddOption(option *Option) error {
	if option == nil {
		return errs.ErrInvalidOption.WithArgs()
	}
	if err := option.validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.options = append(p.options, option)

	return nil
}

// CreateOption creates a valued option and adds it to the parser
func (p *Parser) CreateOption(short, long string, arity types.Arity, action ActionFunc) (*Option, error) {
	o, err := NewOption(short, long, arity, action)
	if err != nil {
		return nil, err
	}

	return o, p.AddOption(o)
}

// CreateFlag creates a flag and adds it to the parser
func (p *Parser) CreateFlag(short, long string) (*Option, error) {
	o, err := NewFlag(short, long)
	if err != nil {
		return nil, err
	}

	return o, p.AddOption(o)
}

// SetTerminalAction replaces the function invoked with the positional arguments
func (p *Parser) SetTerminalAction(action TerminalFunc) error {
	if action == nil {
		return errs.ErrNilAction.WithArgs("terminal action")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminal = action

	return nil
}

// SetQuoting controls how ParseString tokenizes: when true quotes group words, otherwise the
// line is split on whitespace
func (p *Parser) SetQuoting(quoting bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quoting = quoting
}

// Options returns the registered options in registration order
func (p *Parser) Options() []*Option {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]*Option(nil), p.options...)
}

// Parse classifies tokens[1:] (tokens[0] is the command name), invokes the action of every matched
// option in encounter order and finally the terminal action with the positional arguments.
//
// On failure no Result is returned, the terminal action is not invoked, and the error is either a
// parse error (see errs.IsParseError) or the unchanged error returned by an action. Actions invoked
// before the failure are not undone.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	options, terminal := p.snapshot()

	state := parse.NewState(tokens)
	state.Advance() // command name

	res := newResult(options)
	for state.Advance() {
		if err := p.evalToken(state, options, res); err != nil {
			return nil, err
		}
	}

	if terminal != nil {
		if err := terminal(res.Positional()...); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// ParseString tokenizes line and calls Parse
func (p *Parser) ParseString(line string) (*Result, error) {
	p.mu.RLock()
	quoting := p.quoting
	p.mu.RUnlock()

	if !quoting {
		return p.Parse(parse.Fields(line))
	}

	tokens, err := parse.Split(line)
	if err != nil {
		return nil, errs.IllegalArgument(line)
	}

	return p.Parse(tokens)
}

// ResetFlags restores the bound variable of every flag created with BindFlag to false
func (p *Parser) ResetFlags() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, o := range p.options {
		o.Reset()
	}
}

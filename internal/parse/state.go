package parse

import (
	"github.com/ef-ds/deque"
)

// State is a forward-only cursor over the tokens of a command line
type State struct {
	pending *deque.Deque
	current string
	pos     int
}

// NewState creates a new State positioned before the first of args
func NewState(args []string) *State {
	d := deque.New()
	for _, arg := range args {
		d.PushBack(arg)
	}

	return &State{
		pending: d,
		pos:     -1,
	}
}

// Advance moves to the next token, returning false when the tokens are exhausted
func (s *State) Advance() bool {
	v, ok := s.pending.PopFront()
	if !ok {
		return false
	}
	s.current = v.(string)
	s.pos++

	return true
}

// CurrentArg returns the token the cursor is on
func (s *State) CurrentArg() string {
	return s.current
}

// Pos returns the index of the current token in the original list, -1 before the first Advance
func (s *State) Pos() int {
	return s.pos
}

// Peek returns the next token without advancing
func (s *State) Peek() (string, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Remaining returns the number of tokens after the current one
func (s *State) Remaining() int {
	return s.pending.Len()
}

package types

import (
	"strings"

	"github.com/napalu/chatopt/errs"
)

// Arity describes how many trailing tokens an option consumes
type Arity int

const (
	ArityNone Arity = iota // ArityNone denotes an option which consumes no tokens
	ArityOne               // ArityOne denotes an option which consumes exactly the next token
	ArityMany              // ArityMany denotes an option which consumes tokens up to the next one starting with '-'
)

// String returns the string representation of an Arity
func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityOne:
		return "one"
	case ArityMany:
		return "many"
	default:
		return "invalid"
	}
}

// Valid reports whether a is one of ArityNone, ArityOne or ArityMany
func (a Arity) Valid() bool {
	return a >= ArityNone && a <= ArityMany
}

// ParseArity converts the textual form used in configuration files ("none", "one", "many")
// to an Arity. The comparison is case-insensitive.
func ParseArity(s string) (Arity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ArityNone, nil
	case "one":
		return ArityOne, nil
	case "many":
		return ArityMany, nil
	}

	return ArityNone, errs.ErrInvalidArity.WithArgs(s)
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

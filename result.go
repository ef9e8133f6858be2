package chatopt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result holds what a single Parse call matched. It is never modified after Parse returns and is
// safe to share between goroutines.
//
// Options are looked up by name: a single-character name refers to a short identity, a longer one
// to a long identity. As in Parse, the first registered option with that identity is used.
type Result struct {
	options    []*Option
	positional []string
	matches    *orderedmap.OrderedMap[*Option, [][]string]
}

func newResult(options []*Option) *Result {
	return &Result{
		options:    options,
		positional: []string{},
		matches:    orderedmap.New[*Option, [][]string](),
	}
}

func (r *Result) record(opt *Option, values []string) {
	occurrences, _ := r.matches.Get(opt)
	r.matches.Set(opt, append(occurrences, values))
}

// Positional returns the tokens which were neither options nor option values, in their original order
func (r *Result) Positional() []string {
	return append([]string{}, r.positional...)
}

// Flag reports whether the flag called name was set. found is false when no flag is registered
// under name, including when name belongs to a valued option.
func (r *Result) Flag(name string) (set bool, found bool) {
	for _, o := range r.options {
		if o.IsFlag() && o.matches(name) {
			_, set = r.matches.Get(o)
			return set, true
		}
	}

	return false, false
}

// Has reports whether the option called name was matched at least once
func (r *Result) Has(name string) bool {
	o := r.lookup(name)
	if o == nil {
		return false
	}
	_, ok := r.matches.Get(o)

	return ok
}

// Values returns the values consumed by the last match of the option called name, or nil when it
// was not matched
func (r *Result) Values(name string) []string {
	occurrences := r.Occurrences(name)
	if len(occurrences) == 0 {
		return nil
	}

	return occurrences[len(occurrences)-1]
}

// Value returns the first value of the last match of the option called name, or "" when there is none
func (r *Result) Value(name string) string {
	values := r.Values(name)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// Occurrences returns the values consumed by every match of the option called name, in encounter order
func (r *Result) Occurrences(name string) [][]string {
	o := r.lookup(name)
	if o == nil {
		return nil
	}
	occurrences, ok := r.matches.Get(o)
	if !ok {
		return nil
	}

	out := make([][]string, len(occurrences))
	for i, values := range occurrences {
		out[i] = append([]string{}, values...)
	}

	return out
}

// Matched returns the names (see Option.Name) of the matched options in the order they were first matched
func (r *Result) Matched() []string {
	names := make([]string, 0, r.matches.Len())
	for pair := r.matches.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.Name())
	}

	return names
}

func (r *Result) lookup(name string) *Option {
	for _, o := range r.options {
		if o.matches(name) {
			return o
		}
	}

	return nil
}

package chatopt

import (
	"strings"

	"github.com/napalu/chatopt/types"
)

// DefaultRenderer renders option usage for help output
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer creates a renderer for the options registered with parser
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// OptionUsage returns the identities of o formatted as inline code, followed by a value
// placeholder when o consumes values, e.g. "`-l`, `--long`" or "`-m`, `--mention` VALUE..."
func (r *DefaultRenderer) OptionUsage(o *Option) string {
	ids := o.identities()
	for i, id := range ids {
		ids[i] = "`" + id + "`"
	}

	usage := strings.Join(ids, ", ")
	switch o.Arity() {
	case types.ArityOne:
		usage += " VALUE"
	case types.ArityMany:
		usage += " VALUE..."
	}

	return usage
}

// Options returns the usage and description of every registered option in registration order
func (r *DefaultRenderer) Options() []types.KeyValue[string, string] {
	options := r.parser.Options()
	out := make([]types.KeyValue[string, string], 0, len(options))
	for _, o := range options {
		out = append(out, types.KeyValue[string, string]{Key: r.OptionUsage(o), Value: o.Description()})
	}

	return out
}

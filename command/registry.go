package command

import (
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/napalu/chatopt/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry maps aliases to commands. Every camelCase alias is also registered in kebab-case,
// so linkRole is reachable as link-role.
type Registry struct {
	mu       sync.RWMutex
	aliases  *orderedmap.OrderedMap[string, Command]
	commands []Command
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		aliases:  orderedmap.New[string, Command](),
		commands: []Command{},
	}
}

// Register adds cmd under all its aliases. Nothing is registered when one of them is taken.
func (r *Registry) Register(cmd Command) error {
	if cmd == nil {
		return errs.ErrNilAction.WithArgs("command")
	}
	if len(cmd.Aliases()) == 0 {
		return errs.ErrInvalidConfig.WithArgs("command without alias")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names := expandAliases(cmd.Aliases())
	for _, name := range names {
		if _, found := r.aliases.Get(name); found {
			return errs.ErrDuplicateAlias.WithArgs(name)
		}
	}
	for _, name := range names {
		r.aliases.Set(name, cmd)
	}
	r.commands = append(r.commands, cmd)

	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Get returns the command registered under alias
func (r *Registry) Get(alias string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.aliases.Get(alias)
}

// Commands returns every registered command once, in registration order
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Command(nil), r.commands...)
}

// Aliases returns every registered alias, including the kebab-case forms, in registration order
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, r.aliases.Len())
	for pair := r.aliases.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

func expandAliases(aliases []string) []string {
	seen := make(map[string]struct{}, len(aliases)*2)
	out := make([]string, 0, len(aliases)*2)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, alias := range aliases {
		add(alias)
	}
	for _, alias := range aliases {
		add(strcase.ToKebab(alias))
	}

	return out
}

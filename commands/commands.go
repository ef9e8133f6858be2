package commands

import (
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/config"
)

// Register adds help, linkRole and the template commands of cfg to registry and applies the
// permissions configured for each command under its first alias
func Register(registry *command.Registry, cfg *config.Config, linker RoleLinker) error {
	help, err := NewHelp(registry)
	if err != nil {
		return err
	}
	link, err := NewLinkRole(linker)
	if err != nil {
		return err
	}

	cmds := []command.Command{help, link}
	for _, def := range cfg.Commands {
		t, err := NewTemplate(def)
		if err != nil {
			return err
		}
		cmds = append(cmds, t)
	}

	for _, cmd := range cmds {
		cfg.ApplyPermissions(cmd.Aliases()[0], cmd.Permissions())
		if err := registry.Register(cmd); err != nil {
			return err
		}
	}

	return nil
}

// Package config loads the bot configuration from TOML or YAML files
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/logging"
	"github.com/napalu/chatopt/permissions"
	"github.com/napalu/chatopt/types"
	"gopkg.in/yaml.v3"
)

// PrefixEnv overrides Config.Prefix when set
const PrefixEnv = "UMBRELLA_PREFIX"

// Config is the bot configuration
type Config struct {
	Prefix      string                `toml:"prefix" yaml:"prefix"`
	QuotedArgs  bool                  `toml:"quoted_args" yaml:"quoted_args"`
	Workers     int                   `toml:"workers" yaml:"workers"`
	Log         Log                   `toml:"log" yaml:"log"`
	Guild       Guild                 `toml:"guild" yaml:"guild"`
	User        User                  `toml:"user" yaml:"user"`
	Permissions map[string]Permission `toml:"permissions" yaml:"permissions"`
	Commands    []Command             `toml:"commands" yaml:"commands"`
}

// Log configures logging.New, sizes are in megabytes and ages in days
type Log struct {
	Level      string `toml:"level" yaml:"level"`
	JSON       bool   `toml:"json" yaml:"json"`
	File       string `toml:"file" yaml:"file"`
	NoTerminal bool   `toml:"no_terminal" yaml:"no_terminal"`
	MaxSize    int    `toml:"max_size" yaml:"max_size"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAge     int    `toml:"max_age" yaml:"max_age"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// Guild describes the guild served by the console transport. Roles maps role ids to names.
type Guild struct {
	ID    string            `toml:"id" yaml:"id"`
	Name  string            `toml:"name" yaml:"name"`
	Owner string            `toml:"owner" yaml:"owner"`
	Roles map[string]string `toml:"roles" yaml:"roles"`
}

// User is the identity of whoever types into the console
type User struct {
	ID    string   `toml:"id" yaml:"id"`
	Name  string   `toml:"name" yaml:"name"`
	Roles []string `toml:"roles" yaml:"roles"`
}

// Permission overrides the permissions of the command it is keyed by. Default is "allow",
// "deny" or empty to keep the command's own default.
type Permission struct {
	Default    string   `toml:"default" yaml:"default"`
	AllowUsers []string `toml:"allow_users" yaml:"allow_users"`
	AllowRoles []string `toml:"allow_roles" yaml:"allow_roles"`
	DenyUsers  []string `toml:"deny_users" yaml:"deny_users"`
	DenyRoles  []string `toml:"deny_roles" yaml:"deny_roles"`
}

// Command defines a command replying with a rendered text/template
type Command struct {
	Aliases     []string `toml:"aliases" yaml:"aliases"`
	Description string   `toml:"description" yaml:"description"`
	Usage       string   `toml:"usage" yaml:"usage"`
	Hidden      bool     `toml:"hidden" yaml:"hidden"`
	Template    string   `toml:"template" yaml:"template"`
	MinArgs     int      `toml:"min_args" yaml:"min_args"`
	// nil means unlimited
	MaxArgs *int     `toml:"max_args" yaml:"max_args"`
	Options []Option `toml:"options" yaml:"options"`
}

// Option is an option of a template command. Arity is one of none, one or many and is ignored
// for flags.
type Option struct {
	Short       string `toml:"short" yaml:"short"`
	Long        string `toml:"long" yaml:"long"`
	Description string `toml:"description" yaml:"description"`
	Flag        bool   `toml:"flag" yaml:"flag"`
	Arity       string `toml:"arity" yaml:"arity"`
}

// Default returns the configuration used for every key a file does not set
func Default() *Config {
	return &Config{
		Prefix:  "!",
		Workers: 4,
		Log: Log{
			Level: "info",
		},
		Guild: Guild{
			ID:    "console",
			Name:  "console",
			Owner: "owner",
			Roles: map[string]string{},
		},
		User: User{
			ID:   "owner",
			Name: "owner",
		},
		Permissions: map[string]Permission{},
	}
}

// Load reads path on top of Default, choosing the decoder by file extension, applies
// environment overrides and validates the result. An empty path loads no file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return errs.ErrInvalidConfig.WithArgs(fmt.Sprintf("unsupported file extension %q", ext))
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if prefix, ok := lookup(PrefixEnv); ok && prefix != "" {
		c.Prefix = prefix
	}
}

// Validate reports the first invalid setting as errs.ErrInvalidConfig
func (c *Config) Validate() error {
	if c.Prefix == "" || strings.IndexFunc(c.Prefix, unicode.IsSpace) >= 0 {
		return invalid("prefix %q must be non-empty and contain no whitespace", c.Prefix)
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errs.ErrInvalidConfig.WithArgs("log.level").Wrap(err)
	}
	for name, p := range c.Permissions {
		switch p.Default {
		case "", "allow", "deny":
		default:
			return invalid("permissions.%s.default must be allow or deny, got %q", name, p.Default)
		}
	}
	for i, cmd := range c.Commands {
		if err := cmd.validate(); err != nil {
			return errs.ErrInvalidConfig.WithArgs(fmt.Sprintf("commands[%d]", i)).Wrap(err)
		}
	}

	return nil
}

func (c Command) validate() error {
	if len(c.Aliases) == 0 {
		return fmt.Errorf("at least one alias is required")
	}
	for _, alias := range c.Aliases {
		if alias == "" || strings.IndexFunc(alias, unicode.IsSpace) >= 0 {
			return fmt.Errorf("invalid alias %q", alias)
		}
	}
	if c.Template == "" {
		return fmt.Errorf("template is required")
	}
	if c.MinArgs < 0 {
		return fmt.Errorf("min_args must not be negative")
	}
	if c.MaxArgs != nil && *c.MaxArgs < c.MinArgs {
		return fmt.Errorf("max_args %d is lower than min_args %d", *c.MaxArgs, c.MinArgs)
	}
	for _, o := range c.Options {
		if o.Flag {
			continue
		}
		if _, err := types.ParseArity(o.Arity); err != nil {
			return err
		}
	}

	return nil
}

// LogOptions converts the [log] section for logging.New
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Level:      c.Log.Level,
		JSON:       c.Log.JSON,
		File:       c.Log.File,
		NoTerminal: c.Log.NoTerminal,
		Rotation: logging.Rotation{
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Compress:   c.Log.Compress,
		},
	}
}

// ApplyPermissions adds the configured lists of the command called name to perms
func (c *Config) ApplyPermissions(name string, perms *permissions.Permissions) {
	p, ok := c.Permissions[name]
	if !ok {
		return
	}
	switch p.Default {
	case "allow":
		perms.AllowByDefault()
	case "deny":
		perms.DenyByDefault()
	}
	perms.AllowUser(p.AllowUsers...).
		AllowRole(p.AllowRoles...).
		DenyUser(p.DenyUsers...).
		DenyRole(p.DenyRoles...)
}

func invalid(format string, args ...interface{}) error {
	return errs.ErrInvalidConfig.WithArgs(fmt.Sprintf(format, args...))
}

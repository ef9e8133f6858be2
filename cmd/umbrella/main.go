package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/napalu/chatopt"
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/commands"
	"github.com/napalu/chatopt/config"
	"github.com/napalu/chatopt/console"
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/logging"
	"github.com/napalu/chatopt/roletree"
	"github.com/napalu/chatopt/types"
	"github.com/napalu/chatopt/util"
)

type flags struct {
	configPath string
	prefix     string
	workers    int
	verbose    bool
	help       bool
}

func newFlagParser(f *flags) (*chatopt.Parser, error) {
	options := [][]chatopt.ConfigureOptionFunc{
		{chatopt.WithShort("c"), chatopt.WithLong("config"), chatopt.WithArity(types.ArityOne),
			chatopt.WithDescription("Read the configuration from a TOML or YAML file."),
			chatopt.WithAction(func(values ...string) error {
				f.configPath = values[0]
				return nil
			})},
		{chatopt.WithShort("p"), chatopt.WithLong("prefix"), chatopt.WithArity(types.ArityOne),
			chatopt.WithDescription("Override the command prefix."),
			chatopt.WithAction(func(values ...string) error {
				f.prefix = values[0]
				return nil
			})},
		{chatopt.WithShort("w"), chatopt.WithLong("workers"), chatopt.WithArity(types.ArityOne),
			chatopt.WithDescription("Number of messages handled at the same time."),
			chatopt.WithAction(func(values ...string) error {
				n, err := strconv.Atoi(values[0])
				if err != nil || n < 1 {
					return errs.IllegalArgument(values[0])
				}
				f.workers = n
				return nil
			})},
		{chatopt.WithShort("v"), chatopt.WithLong("verbose"), chatopt.AsFlag(), chatopt.WithBinding(&f.verbose),
			chatopt.WithDescription("Log at debug level.")},
		{chatopt.WithShort("h"), chatopt.WithLong("help"), chatopt.AsFlag(), chatopt.WithBinding(&f.help),
			chatopt.WithDescription("Display this message and exit.")},
	}

	configs := make([]chatopt.ConfigureParserFunc, 0, len(options)+1)
	for _, option := range options {
		o, err := chatopt.NewOpt(option...)
		if err != nil {
			return nil, err
		}
		configs = append(configs, chatopt.WithOption(o))
	}
	configs = append(configs, chatopt.WithTerminalAction(func(positional ...string) error {
		if len(positional) > 0 {
			return errs.WrongArgNumber()
		}
		return nil
	}))

	return chatopt.NewParserWith(configs...)
}

func usage(w io.Writer, parser *chatopt.Parser) {
	fmt.Fprintln(w, "Usage: umbrella [OPTION]...")
	fmt.Fprintln(w, "Serves the bot commands on standard input.")
	fmt.Fprintln(w)

	options := chatopt.NewRenderer(parser).Options()
	width := 0
	for _, kv := range options {
		width = max(width, len(strings.ReplaceAll(kv.Key, "`", "")))
	}
	for _, kv := range options {
		fmt.Fprintf(w, "  %-*s  %s\n", width, strings.ReplaceAll(kv.Key, "`", ""), kv.Value)
	}
}

func main() {
	f := &flags{}
	parser, err := newFlagParser(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := parser.Parse(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage(os.Stderr, parser)
		os.Exit(2)
	}
	if f.help {
		usage(os.Stdout, parser)
		os.Exit(0)
	}

	if err := run(f); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.prefix != "" {
		cfg.Prefix = f.prefix
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	registry := command.NewRegistry()
	if err := commands.Register(registry, cfg, roletree.NewForest()); err != nil {
		return err
	}
	dispatcher, err := command.NewDispatcher(registry,
		command.WithPrefix(cfg.Prefix),
		command.WithFallback("help"),
		command.WithQuotedArgs(cfg.QuotedArgs),
		command.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactive := util.IsInteractive(os.Stdin)
	if interactive {
		fmt.Printf("umbrella ready, commands start with %q (%shelp lists them)\n", cfg.Prefix, cfg.Prefix)
	}
	logger.Info("console started", "guild", cfg.Guild.ID, "user", cfg.User.ID, "workers", cfg.Workers)

	return console.New(dispatcher, console.Options{
		In:  os.Stdin,
		Out: os.Stdout,
		Author: &command.Member{
			UserID: cfg.User.ID,
			Name:   cfg.User.Name,
			Roles:  cfg.User.Roles,
		},
		Guild: &command.Guild{
			ID:      cfg.Guild.ID,
			Name:    cfg.Guild.Name,
			OwnerID: cfg.Guild.Owner,
			Roles:   cfg.Guild.Roles,
		},
		Workers:     cfg.Workers,
		Interactive: interactive,
		NoColor:     !interactive,
		Logger:      logger,
	}).Run(ctx)
}

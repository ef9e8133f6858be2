// Package commands contains the chat commands of the bot
package commands

import (
	"context"
	"strings"

	"github.com/napalu/chatopt"
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/errs"
)

// zeroWidthSpace fills values the chat renders as empty
const zeroWidthSpace = "\u200b"

// Help lists the commands of a registry or describes one of them
type Help struct {
	command.Base
	registry *command.Registry
	parser   *chatopt.Parser
}

// NewHelp creates the help command for the commands in registry
func NewHelp(registry *command.Registry) (*Help, error) {
	h := &Help{
		Base:     command.NewBase("Displays a brief description of all commands.", "help", "h"),
		registry: registry,
	}
	h.Perms.AllowByDefault()

	long, err := chatopt.NewOpt(chatopt.WithShort("l"), chatopt.WithLong("long"), chatopt.AsFlag(),
		chatopt.WithDescription("Display the help message in long format."))
	if err != nil {
		return nil, err
	}
	dm, err := chatopt.NewOpt(chatopt.WithShort("d"), chatopt.WithLong("dm"), chatopt.AsFlag(),
		chatopt.WithDescription("Send the help message to the user's DM instead."))
	if err != nil {
		return nil, err
	}
	help, err := chatopt.NewOpt(chatopt.WithShort("h"), chatopt.WithLong("help"), chatopt.AsFlag(),
		chatopt.WithDescription("Display this message."))
	if err != nil {
		return nil, err
	}

	h.parser, err = chatopt.NewParserWith(
		chatopt.WithOption(long),
		chatopt.WithOption(dm),
		chatopt.WithOption(help),
		chatopt.WithTerminalAction(func(positional ...string) error {
			if len(positional) > 1 {
				return errs.WrongArgNumber()
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}

	return h, nil
}

// Execute replies with the summary of every visible command, or with the description of the
// command named by the single positional argument
func (h *Help) Execute(ctx context.Context, inv *command.Invocation) error {
	res, err := h.parser.Parse(inv.Args)
	if err != nil {
		return err
	}

	var target command.Command
	if positional := res.Positional(); len(positional) == 1 {
		cmd, found := h.registry.Get(positional[0])
		if !found || cmd.Hidden() {
			return errs.ErrCommandNotFound.WithArgs(positional[0])
		}
		target = cmd
	}

	send := inv.Reply
	if dm, _ := res.Flag("dm"); dm {
		send = inv.ReplyDM
	}

	switch {
	case res.Has("help"):
		return send(ctx, h.Describe(inv.Prefix))
	case target == nil:
		long, _ := res.Flag("long")
		return send(ctx, h.summary(inv.Prefix, long))
	default:
		return send(ctx, target.Describe(inv.Prefix))
	}
}

func (h *Help) summary(prefix string, long bool) command.Reply {
	embed := &command.Embed{Title: "Commands"}
	for _, cmd := range h.registry.Commands() {
		if cmd.Hidden() {
			continue
		}
		aliases := make([]string, 0, len(cmd.Aliases()))
		for _, alias := range cmd.Aliases() {
			aliases = append(aliases, prefix+alias)
		}
		description := cmd.Description()
		if description == "" {
			description = zeroWidthSpace
		}
		embed.AddField(strings.Join(aliases, ", "), description, !long)
	}

	return command.WithEmbed(embed)
}

// Describe returns the usage of help
func (h *Help) Describe(prefix string) command.Reply {
	embed := &command.Embed{Title: "Help"}
	embed.AddField("Usage:", "`"+prefix+"help [OPTION]... [COMMAND]`", false).
		AddField("Description:", "Display a brief description of all the commands.\n\n"+
			"Appending a COMMAND name to the help command, displays a full description of that COMMAND instead.", false)
	addOptionFields(embed, h.parser)

	return command.WithEmbed(embed)
}

func addOptionFields(embed *command.Embed, parser *chatopt.Parser) {
	options := chatopt.NewRenderer(parser).Options()
	if len(options) == 0 {
		return
	}
	embed.AddField("Options", zeroWidthSpace, false)
	for _, kv := range options {
		description := kv.Value
		if description == "" {
			description = zeroWidthSpace
		}
		embed.AddField(kv.Key, description, false)
	}
}

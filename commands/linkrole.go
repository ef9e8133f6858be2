package commands

import (
	"context"
	"strings"

	"github.com/napalu/chatopt"
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/errs"
)

// RoleLinker stores the role hierarchy of every guild
type RoleLinker interface {
	IsLinked(guildID, role string) bool
	Link(guildID, parent string, roles ...string) error
	Format(guildID string, translate func(role string) string) string
}

// LinkRole links a role as parent of other roles. A member given a role gains all its parents.
type LinkRole struct {
	command.Base
	linker RoleLinker
	parser *chatopt.Parser
}

// NewLinkRole creates the linkRole command storing links in linker
func NewLinkRole(linker RoleLinker) (*LinkRole, error) {
	if linker == nil {
		return nil, errs.ErrNilAction.WithArgs("role linker")
	}
	l := &LinkRole{
		Base:   command.NewBase("Links a role as parent to other roles.", "linkRole", "lnk"),
		linker: linker,
	}
	l.Perms.DenyByDefault()

	help, err := chatopt.NewOpt(chatopt.WithShort("h"), chatopt.WithLong("help"), chatopt.AsFlag(),
		chatopt.WithDescription("Display this message."))
	if err != nil {
		return nil, err
	}
	l.parser, err = chatopt.NewParserWith(
		chatopt.WithOption(help),
		chatopt.WithTerminalAction(func(positional ...string) error {
			if len(positional) < 2 {
				return errs.WrongArgNumber()
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Allowed lets the guild owner through regardless of the permission lists
func (l *LinkRole) Allowed(inv *command.Invocation) bool {
	msg := inv.Message
	if msg != nil && msg.Guild != nil && msg.Author != nil && msg.Guild.OwnerID == msg.Author.ID() {
		return true
	}

	return l.Base.Allowed(inv)
}

// Execute links the roles mentioned after the parent mention and replies with the role tree
func (l *LinkRole) Execute(ctx context.Context, inv *command.Invocation) error {
	res, err := l.parser.Parse(inv.Args)
	if err != nil {
		return err
	}
	guild := inv.Message.Guild
	if guild == nil {
		return errs.ErrPermissionDenied.WithArgs()
	}

	positional := res.Positional()
	parent, err := roleID(guild, positional[0])
	if err != nil {
		return err
	}
	roles := make([]string, 0, len(positional)-1)
	for _, mention := range positional[1:] {
		id, err := roleID(guild, mention)
		if err != nil {
			return err
		}
		if l.linker.IsLinked(guild.ID, id) {
			return errs.ErrRoleAlreadyLinked.WithArgs(mention)
		}
		roles = append(roles, id)
	}

	if res.Has("help") {
		return inv.Reply(ctx, l.Describe(inv.Prefix))
	}

	if err := l.linker.Link(guild.ID, parent, roles...); err != nil {
		return err
	}
	inv.Logger.Info("roles linked", "guild", guild.ID, "parent", parent, "roles", roles)

	embed := &command.Embed{Title: "Role tree"}
	embed.AddField(guild.Name, "```\n"+l.linker.Format(guild.ID, guild.RoleName)+"\n```", false)

	return inv.Reply(ctx, command.WithEmbed(embed))
}

// roleID extracts the id of a role mention such as <@&123> and checks it exists in guild
func roleID(guild *command.Guild, mention string) (string, error) {
	if !strings.HasPrefix(mention, "<@&") || !strings.HasSuffix(mention, ">") || len(mention) < 4 {
		return "", errs.IllegalArgument(mention)
	}
	id := mention[3 : len(mention)-1]
	if !guild.HasRole(id) {
		return "", errs.IllegalArgument(mention)
	}

	return id, nil
}

// Describe returns the usage of linkRole
func (l *LinkRole) Describe(prefix string) command.Reply {
	embed := &command.Embed{Title: "Link Roles"}
	embed.AddField("Usage:", "`"+prefix+"linkRole [PARENT] [ROLES]...`", false).
		AddField("Description:", "Links a role as a parent role to other roles, when a user gets "+
			"assigned a role, they automatically gain all its parent roles.", false)
	addOptionFields(embed, l.parser)

	return command.WithEmbed(embed)
}

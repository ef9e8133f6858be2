package commands

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/napalu/chatopt"
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/config"
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/types"
)

var templateFuncs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// TemplateData is what a template command renders
type TemplateData struct {
	Prefix     string
	Alias      string
	Author     string
	Positional []string
	// Flags holds every flag by name, set or not
	Flags map[string]bool
	// Values holds the values of the last match of every matched valued option by name
	Values map[string][]string
}

// Template is a command defined in the configuration. It replies with its template rendered
// from the parsed arguments.
type Template struct {
	command.Base
	usage  string
	tmpl   *template.Template
	parser *chatopt.Parser
}

// NewTemplate creates a command from def
func NewTemplate(def config.Command) (*Template, error) {
	if len(def.Aliases) == 0 {
		return nil, errs.ErrInvalidConfig.WithArgs("command without alias")
	}
	tmpl, err := template.New(def.Aliases[0]).Funcs(templateFuncs).Parse(def.Template)
	if err != nil {
		return nil, errs.ErrInvalidConfig.WithArgs(fmt.Sprintf("template of %s", def.Aliases[0])).Wrap(err)
	}

	t := &Template{
		Base:  command.NewBase(def.Description, def.Aliases...),
		usage: def.Usage,
		tmpl:  tmpl,
	}
	t.Secret = def.Hidden

	configs := make([]chatopt.ConfigureParserFunc, 0, len(def.Options)+1)
	for _, o := range def.Options {
		opt, err := newTemplateOption(o)
		if err != nil {
			return nil, err
		}
		configs = append(configs, chatopt.WithOption(opt))
	}
	configs = append(configs, chatopt.WithTerminalAction(argCount(def.MinArgs, def.MaxArgs)))

	if t.parser, err = chatopt.NewParserWith(configs...); err != nil {
		return nil, err
	}

	return t, nil
}

func newTemplateOption(o config.Option) (*chatopt.Option, error) {
	configs := []chatopt.ConfigureOptionFunc{
		chatopt.WithShort(o.Short),
		chatopt.WithLong(o.Long),
		chatopt.WithDescription(o.Description),
	}
	if o.Flag {
		configs = append(configs, chatopt.AsFlag())
	} else {
		arity, err := types.ParseArity(o.Arity)
		if err != nil {
			return nil, err
		}
		configs = append(configs, chatopt.WithArity(arity))
	}

	return chatopt.NewOpt(configs...)
}

func argCount(minArgs int, maxArgs *int) chatopt.TerminalFunc {
	return func(positional ...string) error {
		if len(positional) < minArgs || (maxArgs != nil && len(positional) > *maxArgs) {
			return errs.WrongArgNumber()
		}
		return nil
	}
}

// Execute renders the template and replies with the result
func (t *Template) Execute(ctx context.Context, inv *command.Invocation) error {
	res, err := t.parser.Parse(inv.Args)
	if err != nil {
		return err
	}

	data := TemplateData{
		Prefix:     inv.Prefix,
		Alias:      inv.Alias,
		Positional: res.Positional(),
		Flags:      map[string]bool{},
		Values:     map[string][]string{},
	}
	if inv.Message != nil && inv.Message.Author != nil {
		data.Author = inv.Message.Author.Name
	}
	for _, o := range t.parser.Options() {
		if o.IsFlag() {
			data.Flags[o.Name()], _ = res.Flag(o.Name())
		} else if res.Has(o.Name()) {
			data.Values[o.Name()] = res.Values(o.Name())
		}
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return fmt.Errorf("rendering %s: %w", t.Aliases()[0], err)
	}

	return inv.Reply(ctx, command.Text(sb.String()))
}

// Describe returns the usage and options of the command
func (t *Template) Describe(prefix string) command.Reply {
	usage := t.usage
	if usage == "" {
		usage = t.Aliases()[0] + " [OPTION]... [ARG]..."
	}
	embed := &command.Embed{Title: t.Aliases()[0]}
	embed.AddField("Usage:", "`"+prefix+usage+"`", false)
	if t.Description() != "" {
		embed.AddField("Description:", t.Description(), false)
	}
	addOptionFields(embed, t.parser)

	return command.WithEmbed(embed)
}

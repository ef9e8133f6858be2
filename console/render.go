package console

import (
	"strings"

	"github.com/napalu/chatopt/command"
)

// Render formats reply as plain text. Embeds become a bracketed title followed by one indented
// line per inline field, or a name line followed by the indented value for other fields.
func Render(reply command.Reply) string {
	var sb strings.Builder
	if reply.Content != "" {
		sb.WriteString(reply.Content)
		sb.WriteString("\n")
	}
	for _, embed := range reply.Embeds {
		sb.WriteString("[" + embed.Title + "]\n")
		for _, f := range embed.Fields {
			value := strings.TrimSpace(strings.ReplaceAll(f.Value, "\u200b", ""))
			switch {
			case value == "":
				sb.WriteString("  " + f.Name + "\n")
			case f.Inline:
				sb.WriteString("  " + f.Name + ": " + value + "\n")
			default:
				sb.WriteString("  " + f.Name + "\n")
				for _, line := range strings.Split(value, "\n") {
					sb.WriteString("    " + line + "\n")
				}
			}
		}
	}

	return sb.String()
}

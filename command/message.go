package command

import "slices"

// Member is the author of a message
type Member struct {
	UserID string
	Name   string
	Bot    bool
	Roles  []string
}

// ID returns the user id of m
func (m *Member) ID() string {
	return m.UserID
}

// HasRole reports whether m was given roleID
func (m *Member) HasRole(roleID string) bool {
	return slices.Contains(m.Roles, roleID)
}

// Guild is the server a message was posted in. Roles maps role ids to role names.
type Guild struct {
	ID      string
	Name    string
	OwnerID string
	Roles   map[string]string
}

// RoleName returns the name of roleID, "@everyone" for the empty id and the id itself when unknown
func (g *Guild) RoleName(roleID string) string {
	if roleID == "" {
		return "@everyone"
	}
	if name, ok := g.Roles[roleID]; ok {
		return name
	}

	return roleID
}

// HasRole reports whether roleID exists in g
func (g *Guild) HasRole(roleID string) bool {
	_, ok := g.Roles[roleID]
	return ok
}

// Message is an incoming chat message. Guild is nil for direct messages.
type Message struct {
	Content string
	Author  *Member
	Guild   *Guild
}

// Field is a named section of an Embed
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a titled list of fields
type Embed struct {
	Title  string
	Fields []Field
}

// AddField appends a field and returns e
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, Field{Name: name, Value: value, Inline: inline})
	return e
}

// Reply is an outgoing message
type Reply struct {
	Content string
	Embeds  []Embed
}

// Text returns a Reply with content only
func Text(content string) Reply {
	return Reply{Content: content}
}

// WithEmbed returns a Reply holding e only
func WithEmbed(e *Embed) Reply {
	return Reply{Embeds: []Embed{*e}}
}

// Package palette builds and filters the command palette: the searchable
// list of command descriptions plus any registered command instances.
package palette

import (
	"strings"

	"github.com/louisbranch/pagemark/internal/command"
)

// Entry is one selectable palette row.
type Entry struct {
	ID    command.ID
	Label string
}

// hidden lists commands that never show up in the palette.
var hidden = map[command.ID]bool{
	command.CmdCommandPalette: true,
}

// Entries collects palette rows: every catalog command by description,
// except the hidden set, followed by registered instances labeled by
// their definition text. reg may be nil.
func Entries(cat *command.Catalog, reg *command.Registry) []Entry {
	cmds := cat.Commands()
	out := make([]Entry, 0, len(cmds))
	for _, c := range cmds {
		if hidden[c.ID] {
			continue
		}
		out = append(out, Entry{ID: c.ID, Label: c.Description})
	}
	if reg != nil {
		for _, inst := range reg.Instances() {
			out = append(out, Entry{ID: inst.ID, Label: inst.Definition})
		}
	}
	return out
}

// Filter returns the entries matching a query. The query is one or more
// words separated by whitespace; an entry matches when every word is a
// case-insensitive substring of its label. An empty query matches all.
func Filter(entries []Entry, query string) []Entry {
	words := strings.Fields(query)
	if len(words) == 0 {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if matches(e.Label, words) {
			out = append(out, e)
		}
	}
	return out
}

func matches(label string, words []string) bool {
	lower := strings.ToLower(label)
	for _, w := range words {
		if !strings.Contains(lower, strings.ToLower(w)) {
			return false
		}
	}
	return true
}

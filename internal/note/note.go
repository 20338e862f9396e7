package note

import "strings"

// Note is an ordered field name → text mapping. The host application owns
// the field order; we preserve it exactly as given.
type Note struct {
	names    []string
	values   map[string]string
	modified map[string]bool
}

// New creates a note with the given field names, all empty.
func New(fields ...string) *Note {
	n := &Note{
		names:    make([]string, 0, len(fields)),
		values:   make(map[string]string, len(fields)),
		modified: make(map[string]bool),
	}
	for _, f := range fields {
		n.names = append(n.names, f)
		n.values[f] = ""
	}
	return n
}

// Fields returns the field names in their original order.
func (n *Note) Fields() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Has reports whether the note contains a field with the given name.
func (n *Note) Has(field string) bool {
	_, ok := n.values[field]
	return ok
}

// Get returns the text of a field, or "" if the field does not exist.
func (n *Note) Get(field string) string {
	return n.values[field]
}

// Set writes text into an existing field and records the modification.
// Setting a field to its current value is a no-op. Unknown fields are
// ignored so callers can Set optimistically.
func (n *Note) Set(field, text string) {
	current, ok := n.values[field]
	if !ok || current == text {
		return
	}
	n.values[field] = text
	n.modified[field] = true
}

// Empty reports whether a field exists and currently holds no visible text.
// HTML such as "<br>" or "&nbsp;" left behind by editors counts as empty.
func (n *Note) Empty(field string) bool {
	v, ok := n.values[field]
	if !ok {
		return false
	}
	return strings.TrimSpace(stripFiller(v)) == ""
}

// Modified reports whether any field has been changed since creation.
func (n *Note) Modified() bool {
	return len(n.modified) > 0
}

// ModifiedFields returns the names of changed fields in field order.
func (n *Note) ModifiedFields() []string {
	var out []string
	for _, name := range n.names {
		if n.modified[name] {
			out = append(out, name)
		}
	}
	return out
}

// fillerTokens are editor leftovers that still render as an empty field.
var fillerTokens = []string{"<br>", "<br/>", "<br />", "&nbsp;"}

func stripFiller(s string) string {
	for _, tok := range fillerTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return s
}

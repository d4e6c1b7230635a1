// Package section defines the page sections and decides which one is
// active for navigation highlighting.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned by Parse for names outside the fixed set.
var ErrUnknownSection = errors.New("unknown section")

// ID names a page section. It doubles as the DOM element id.
type ID string

// Sections in document order.
const (
	Home       ID = "home"
	About      ID = "about"
	Skills     ID = "skills"
	Experience ID = "experience"
	Education  ID = "education"
	Research   ID = "research"
	Contact    ID = "contact"
)

var order = []ID{Home, About, Skills, Experience, Education, Research, Contact}

// All returns the sections top to bottom. The slice is a copy.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// Parse resolves a case-insensitive section name.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return id, nil
}

// Valid reports whether id is one of the fixed sections.
func (id ID) Valid() bool {
	for _, s := range order {
		if s == id {
			return true
		}
	}
	return false
}

// Label is the navigation text, e.g. "Experience".
func (id ID) Label() string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(string(id[:1])) + string(id[1:])
}

// Anchor is the in-page link target.
func (id ID) Anchor() string { return "#" + string(id) }

func (id ID) String() string { return string(id) }

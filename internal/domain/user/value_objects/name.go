package value_objects

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MinNameLength = 2
	MaxNameLength = 100
)

// letters of any script, separated by single spaces, hyphens, apostrophes
// or periods
var nameRegex = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M}\s\-'\.]*$`)

// Name is a campus member's name as entered at registration.
type Name struct {
	value string
}

func NewName(value string) (*Name, error) {
	normalized := strings.TrimSpace(value)

	switch n := utf8.RuneCountInString(normalized); {
	case n == 0:
		return nil, fmt.Errorf("name cannot be empty")
	case n < MinNameLength:
		return nil, fmt.Errorf("name must be at least %d characters long", MinNameLength)
	case n > MaxNameLength:
		return nil, fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}

	if !nameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("name contains invalid characters: %s", value)
	}
	if strings.Contains(normalized, "  ") {
		return nil, fmt.Errorf("name cannot contain consecutive spaces")
	}

	return &Name{value: normalized}, nil
}

func (n *Name) String() string {
	return n.value
}

func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.value, other.value)
}

// Initials returns the upper-cased first letter of every name part.
func (n *Name) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(n.value) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// DisplayName title-cases every part, so "ada LOVELACE" shows as
// "Ada Lovelace" on issue timelines.
func (n *Name) DisplayName() string {
	caser := cases.Title(language.Und)
	parts := strings.Fields(n.value)
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, " ")
}

func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	name, err := NewName(raw)
	if err != nil {
		return err
	}
	*n = *name
	return nil
}

package menu

import (
	"slices"
	"strings"
)

// Item is a single dish.
type Item struct {
	// Name is the dish name. Never empty for items produced by the parser.
	Name string `json:"name" yaml:"name" jsonschema:"minLength=1"`

	// Description is free text and may be empty.
	Description string `json:"description" yaml:"description"`

	// Dietary lists dietary tags in the order they were encountered.
	Dietary []string `json:"dietary" yaml:"dietary"`
}

// HasTag reports whether the item carries the given dietary tag.
func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Dietary, tag)
}

// DietaryLabel returns the tags joined with ", ", or "" when there are none.
func (i Item) DietaryLabel() string {
	return strings.Join(i.Dietary, ", ")
}

// Equal compares two items. A nil and an empty tag list are equal.
func (i Item) Equal(other Item) bool {
	if i.Name != other.Name || i.Description != other.Description {
		return false
	}
	return slices.Equal(i.Dietary, other.Dietary)
}

func (i Item) clone() Item {
	i.Dietary = slices.Clone(i.Dietary)
	return i
}

// Section is a named group of items.
type Section struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// RawSection is a heading paired with item text that has not been split into
// name, description and tags. Multi-line item text is joined with "\n".
type RawSection struct {
	Heading string   `json:"heading" yaml:"heading"`
	Items   []string `json:"items" yaml:"items"`
}

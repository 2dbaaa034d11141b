package dietary

import "strings"

// Canonical tag spellings.
const (
	Vegan         = "Vegan"
	Vegetarian    = "Vegetarian"
	NonVegetarian = "Non-Vegetarian"
	GlutenFree    = "Gluten-Free"
	DairyFree     = "Dairy-Free"
	NutFree       = "Nut-Free"
)

// Known lists the canonical tags in the order they are offered to users.
var Known = []string{Vegetarian, NonVegetarian, Vegan, GlutenFree, DairyFree, NutFree}

var canonical = func() map[string]string {
	m := make(map[string]string, len(Known))
	for _, tag := range Known {
		m[key(tag)] = tag
	}
	return m
}()

// Normalize trims a tag and maps known spellings onto their canonical form,
// so "nut free", "Nut-free" and "NUT_FREE" all become "Nut-Free".
// Unknown tags are returned trimmed but otherwise unchanged.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if c, ok := canonical[key(tag)]; ok {
		return c
	}
	return tag
}

// IsKnown reports whether the tag normalizes to a canonical tag.
func IsKnown(tag string) bool {
	_, ok := canonical[key(tag)]
	return ok
}

// Split parses a comma-separated tag list, normalizing each tag and dropping
// empty entries.
func Split(list string) []string {
	parts := strings.Split(list, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := Normalize(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func key(tag string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(tag), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "-")
}

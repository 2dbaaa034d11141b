package dietary

import (
	"slices"
	"strings"

	"github.com/randalmurphal/culinary/menu"
)

// Rule disproves a dietary tag when the description mentions a trigger.
type Rule struct {
	// Tag is the claim being checked, e.g. "Vegan".
	Tag string `json:"tag" yaml:"tag" toml:"tag"`

	// Triggers are lower-case substrings that contradict the claim.
	Triggers []string `json:"triggers" yaml:"triggers" toml:"triggers"`

	// Replacement is appended when the tag is removed, unless already present.
	// Optional.
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty" toml:"replacement,omitempty"`
}

// Matches reports whether a lower-cased description contains any trigger.
func (r Rule) Matches(description string) bool {
	for _, t := range r.Triggers {
		if t != "" && strings.Contains(description, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Tag:         Vegan,
			Triggers:    []string{"cheese", "honey", "milk", "cream", "yogurt"},
			Replacement: Vegetarian,
		},
		{
			Tag:      GlutenFree,
			Triggers: []string{"pita", "bread", "filo", "phyllo", "pasta"},
		},
		{
			Tag:      NutFree,
			Triggers: []string{"almond", "walnut", "pecan", "pine nut", "pistachio"},
		},
	}
}

// Validator applies rules to an item's tags.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	rules []Rule
}

// NewValidator creates a validator. With no rules it uses DefaultRules.
func NewValidator(rules ...Rule) *Validator {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Validator{rules: slices.Clone(rules)}
}

// Rules returns a copy of the validator's rules.
func (v *Validator) Rules() []Rule {
	return slices.Clone(v.rules)
}

// Validate returns the tags corrected against the description.
// Every rule whose tag is present and whose triggers appear in the
// description removes that tag (all occurrences) and appends its replacement
// if it is not already there. The input slice is not modified.
func (v *Validator) Validate(description string, tags []string) []string {
	validated := slices.Clone(tags)
	desc := strings.ToLower(description)

	for _, rule := range v.rules {
		if !slices.Contains(validated, rule.Tag) || !rule.Matches(desc) {
			continue
		}
		validated = slices.DeleteFunc(validated, func(t string) bool { return t == rule.Tag })
		if rule.Replacement != "" && !slices.Contains(validated, rule.Replacement) {
			validated = append(validated, rule.Replacement)
		}
	}
	return validated
}

// ValidateItem returns a copy of the item with validated tags.
func (v *Validator) ValidateItem(item menu.Item) menu.Item {
	item.Dietary = v.Validate(item.Description, item.Dietary)
	return item
}

package parser

import (
	"strings"

	"github.com/randalmurphal/culinary/menu"
)

// ParseLines parses line-oriented menu text into a menu.
//
// Sections appear in the order their headers first occur and may be empty.
// Returns ErrEmptyInput when text is empty or contains only whitespace.
func (p *Parser) ParseLines(text string) (*menu.Menu, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	m := menu.New()
	var (
		current   string
		open      bool // a recognized section is accepting items
		continues bool // the last line produced an item in current
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, ok, known := p.header(line); ok {
			open, continues = known, false
			if known {
				current = name
				m.AddSection(name)
			}
			continue
		}

		if !open {
			continue
		}

		// Indented lines under an item carry its description, even when
		// they hold a colon or open with an italic "*".
		if continues && isIndented(raw) && !strings.HasPrefix(line, "* ") {
			if extra := p.clean(line); extra != "" {
				items, _ := m.Items(current)
				last := &items[len(items)-1]
				last.Description = strings.TrimSpace(last.Description + " " + extra)
			}
			continue
		}

		if p.isItemLine(line) {
			item, ok := p.parseItem(line)
			continues = ok
			if ok {
				m.AddItem(current, item)
			}
			continue
		}

		// Unindented prose and rules between items are skipped.
		continues = false
	}

	p.validate(m)
	return m, nil
}

// ToMenu decomposes block-parsed sections into a menu. The first line of each
// item is parsed like an item line; following lines continue its description.
// Headings are kept even when none of their items could be decomposed.
func (p *Parser) ToMenu(sections []menu.RawSection) *menu.Menu {
	m := menu.New()
	for _, s := range sections {
		m.AddSection(s.Heading)
		for _, text := range s.Items {
			first, rest, _ := strings.Cut(text, "\n")
			item, ok := p.parseItem(first)
			if !ok {
				continue
			}
			for _, line := range strings.Split(rest, "\n") {
				if line = p.clean(line); line != "" {
					item.Description = strings.TrimSpace(item.Description + " " + line)
				}
			}
			m.AddItem(s.Heading, item)
		}
	}
	p.validate(m)
	return m
}

func isIndented(raw string) bool {
	return raw != "" && (raw[0] == ' ' || raw[0] == '\t')
}

// isItemLine reports whether a non-header line opens an item. Free-form
// parsing requires a leading "*"; whitelist parsing also takes unbulleted
// lines that carry a colon.
func (p *Parser) isItemLine(line string) bool {
	if strings.HasPrefix(line, "*") {
		return true
	}
	return p.headerRegex != nil && strings.Contains(line, ":")
}

// parseItem splits an item line into name, description and tags.
// Lines without a colon or with an empty name are rejected.
func (p *Parser) parseItem(line string) (menu.Item, bool) {
	name, desc, ok := strings.Cut(p.clean(line), ":")
	if !ok {
		return menu.Item{}, false
	}
	name, desc = strings.TrimSpace(name), strings.TrimSpace(desc)

	var (
		tags  []string
		found bool
	)
	if p.source != DietaryFromDescription {
		name, tags, found = p.extractTags(name)
	}
	if !found && p.source != DietaryFromName {
		desc, tags, _ = p.extractTags(desc)
	}

	if name == "" {
		return menu.Item{}, false
	}
	if tags == nil {
		tags = []string{}
	}
	return menu.Item{Name: name, Description: desc, Dietary: tags}, true
}

func (p *Parser) validate(m *menu.Menu) {
	if p.validator == nil {
		return
	}
	for _, s := range m.Sections() {
		for i := range s.Items {
			s.Items[i] = p.validator.ValidateItem(s.Items[i])
		}
	}
}

// ParseLines is a convenience function using the default parser.
func ParseLines(text string) (*menu.Menu, error) {
	return NewParser().ParseLines(text)
}

package parser

import (
	"strings"

	"github.com/randalmurphal/culinary/menu"
)

// ParseBlocks parses blank-line-delimited menu text into raw sections.
//
// Each block's first line is the heading, with surrounding asterisks and
// spaces removed. Lines starting with "*" open a new item; other lines are
// appended to the open item (or open one when none is). Blocks without a
// heading or without items are dropped. Empty input yields nil.
func (p *Parser) ParseBlocks(text string) []menu.RawSection {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var sections []menu.RawSection
	for _, block := range p.blankLineRegex.Split(text, -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		heading := strings.TrimSpace(strings.Trim(strings.TrimSpace(lines[0]), "* "))
		if heading == "" {
			continue
		}

		var (
			items   []string
			current []string
		)
		flush := func() {
			if len(current) > 0 {
				items = append(items, strings.Join(current, "\n"))
				current = nil
			}
		}

		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "*"):
				flush()
				current = append(current, strings.TrimLeft(line, "* "))
			case line != "":
				current = append(current, line)
			}
		}
		flush()

		if len(items) > 0 {
			sections = append(sections, menu.RawSection{Heading: heading, Items: items})
		}
	}
	return sections
}

// ParseBlocks is a convenience function using the default parser.
func ParseBlocks(text string) []menu.RawSection {
	return NewParser().ParseBlocks(text)
}

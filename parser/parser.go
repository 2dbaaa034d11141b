package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/randalmurphal/culinary/dietary"
)

// DefaultSections are the sections the menu prompt asks for.
var DefaultSections = []string{"Appetizers", "Main Courses", "Desserts"}

// DietarySource selects which item segment dietary tags are read from.
type DietarySource int

const (
	// DietaryFromEither reads the name segment first and falls back to the
	// description segment.
	DietaryFromEither DietarySource = iota
	// DietaryFromName only reads the name segment.
	DietaryFromName
	// DietaryFromDescription only reads the description segment.
	DietaryFromDescription
)

// ParseDietarySource maps "either", "name" or "description" to a DietarySource.
func ParseDietarySource(s string) (DietarySource, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "either":
		return DietaryFromEither, true
	case "name":
		return DietaryFromName, true
	case "description":
		return DietaryFromDescription, true
	}
	return DietaryFromEither, false
}

// Parser extracts menus from model output.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	// sections is the closed set of recognized section names; nil accepts any
	// double-asterisk header.
	sections []string
	// canonical maps lower-cased whitelist names to their configured spelling.
	canonical map[string]string

	// headerRegex matches whitelisted headers at the start of a line.
	headerRegex *regexp.Regexp
	// groupRegex matches the first parenthesized group (closing paren optional
	// at end of segment).
	groupRegex *regexp.Regexp
	// cleanRegex matches bold markers and the decorative glyph.
	cleanRegex *regexp.Regexp
	// italicRegex matches single-asterisk emphasis around a word run.
	italicRegex *regexp.Regexp
	// bulletRegex matches "* " bullet markers.
	bulletRegex *regexp.Regexp
	// blankLineRegex splits blocks for ParseBlocks.
	blankLineRegex *regexp.Regexp

	validator *dietary.Validator
	source    DietarySource
}

// Option configures a Parser.
type Option func(*Parser)

// WithSections restricts ParseLines to the given section names.
// Matching is case-insensitive; the configured spelling is used as the key.
func WithSections(names ...string) Option {
	return func(p *Parser) {
		p.sections = nil
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				p.sections = append(p.sections, n)
			}
		}
	}
}

// WithValidator sets the dietary validator used after parsing.
func WithValidator(v *dietary.Validator) Option {
	return func(p *Parser) { p.validator = v }
}

// WithoutValidation disables the dietary validation pass.
func WithoutValidation() Option {
	return func(p *Parser) { p.validator = nil }
}

// WithDietarySource selects where dietary tags are read from.
func WithDietarySource(s DietarySource) Option {
	return func(p *Parser) { p.source = s }
}

// NewParser creates a parser. By default it accepts any double-asterisk
// header, reads tags from either segment and validates them with
// dietary.DefaultRules.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		groupRegex:     regexp.MustCompile(`\(([^()]*)(?:\)|$)`),
		cleanRegex:     regexp.MustCompile(`\*{2}|\x{1F37D}\x{FE0F}?`),
		italicRegex:    regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`),
		bulletRegex:    regexp.MustCompile(`\* `),
		blankLineRegex: regexp.MustCompile(`\n[ \t]*\n`),
		validator:      dietary.NewValidator(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if len(p.sections) > 0 {
		p.canonical = make(map[string]string, len(p.sections))
		alts := make([]string, 0, len(p.sections))
		for _, name := range p.sections {
			p.canonical[strings.ToLower(name)] = name
			alts = append(alts, regexp.QuoteMeta(name))
		}
		// Longest first so "Main Courses" wins over "Main".
		sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
		p.headerRegex = regexp.MustCompile(`(?i)^\*{0,2}(` + strings.Join(alts, "|") + `)\*{0,2}`)
	}

	return p
}

// Sections returns the recognized section names, or nil in free-form mode.
func (p *Parser) Sections() []string {
	if p.sections == nil {
		return nil
	}
	out := make([]string, len(p.sections))
	copy(out, p.sections)
	return out
}

// Validates reports whether the dietary validation pass is enabled.
func (p *Parser) Validates() bool {
	return p.validator != nil
}

// header classifies a trimmed line. ok is true for any header line; known is
// false for headers outside the whitelist.
func (p *Parser) header(line string) (name string, ok, known bool) {
	if p.headerRegex != nil {
		if m := p.headerRegex.FindStringSubmatch(line); m != nil {
			return p.canonical[strings.ToLower(m[1])], true, true
		}
	}

	if len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
		name = strings.TrimSpace(line[2 : len(line)-2])
		if name == "" || strings.Contains(name, "**") {
			return "", false, false
		}
		// A whitelist rejects anything its pattern did not match.
		return name, true, p.headerRegex == nil
	}

	return "", false, false
}

// clean strips emphasis markers, bullets and the decorative glyph.
// Italics are unwrapped before bullets are removed so "*dip* with" keeps
// its words apart.
func (p *Parser) clean(s string) string {
	s = p.cleanRegex.ReplaceAllString(s, "")
	s = p.italicRegex.ReplaceAllString(s, "$1")
	s = p.bulletRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*"))
}

// extractTags removes the first parenthesized group from seg and returns the
// remaining text and the group's tags. found is false when seg has no group.
func (p *Parser) extractTags(seg string) (rest string, tags []string, found bool) {
	loc := p.groupRegex.FindStringSubmatchIndex(seg)
	if loc == nil {
		return seg, nil, false
	}
	tags = dietary.Split(seg[loc[2]:loc[3]])
	rest = strings.Join(strings.Fields(seg[:loc[0]]+" "+seg[loc[1]:]), " ")
	return rest, tags, true
}

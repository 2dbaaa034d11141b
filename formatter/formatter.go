package formatter

import (
	"strings"

	"github.com/randalmurphal/culinary/menu"
)

// Glyph is the decorative prefix of display item lines.
const Glyph = "\U0001F37D\uFE0F"

// Style selects the output layout.
type Style string

// Style constants.
const (
	StylePlain   Style = "plain"
	StyleDisplay Style = "display"
)

// Formatter renders menus as text.
type Formatter struct {
	style Style
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithStyle sets the output style. Unknown styles fall back to plain.
func WithStyle(s Style) Option {
	return func(f *Formatter) { f.style = s }
}

// New creates a formatter using StylePlain unless configured otherwise.
func New(opts ...Option) *Formatter {
	f := &Formatter{style: StylePlain}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Style returns the configured style.
func (f *Formatter) Style() Style {
	return f.style
}

// Format renders the menu in the configured style.
func (f *Formatter) Format(m *menu.Menu) string {
	if m == nil {
		return ""
	}
	if f.style == StyleDisplay {
		return formatDisplay(m)
	}
	return formatPlain(m)
}

func formatPlain(m *menu.Menu) string {
	var b strings.Builder
	for _, s := range m.Sections() {
		b.WriteString("**" + s.Name + "**\n\n")
		for _, item := range s.Items {
			b.WriteString("* " + item.Name + dietarySuffix(item) + ":\n")
			if item.Description != "" {
				b.WriteString("  " + item.Description + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatDisplay(m *menu.Menu) string {
	var lines []string
	for _, s := range m.Sections() {
		if len(s.Items) == 0 {
			continue
		}
		lines = append(lines, "### "+s.Name+"\n")
		for _, item := range s.Items {
			lines = append(lines, "#### "+Glyph+" "+item.Name+dietarySuffix(item))
			if item.Description != "" {
				lines = append(lines, "*"+item.Description+"*\n")
			}
		}
		lines = append(lines, "---\n")
	}
	return strings.Join(lines, "\n")
}

// FormatRaw renders block-parsed sections as a console listing.
// Continuation lines of multi-line items are indented under their item.
func (f *Formatter) FormatRaw(sections []menu.RawSection) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Heading + ":\n")
		for _, item := range s.Items {
			b.WriteString("- " + strings.ReplaceAll(item, "\n", "\n  ") + "\n")
		}
	}
	return b.String()
}

// dietarySuffix returns " (Tag, Tag)" or "" when the item has no tags.
func dietarySuffix(item menu.Item) string {
	if len(item.Dietary) == 0 {
		return ""
	}
	return " (" + item.DietaryLabel() + ")"
}

// Format renders the menu in the plain style.
func Format(m *menu.Menu) string {
	return New().Format(m)
}

// FormatDisplay renders the menu in the display style.
func FormatDisplay(m *menu.Menu) string {
	return New(WithStyle(StyleDisplay)).Format(m)
}

// Package normalize cleans model responses before they are parsed.
//
// Models do not always answer in the requested plain format. A response may
// be wrapped in a single fenced code block, rendered as HTML, or use markdown
// "#" headings instead of "**Heading**" lines. Normalize rewrites those shapes
// into the line-oriented format the parser reads. Text already in that format
// passes through unchanged apart from line-ending cleanup.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// DefaultNoiseSelectors are removed from HTML responses before conversion.
var DefaultNoiseSelectors = []string{
	"script", "style", "noscript", "head",
	"img", "picture", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input",
}

var (
	fencePattern   = regexp.MustCompile("(?s)^```[\\w+-]*[ \\t]*\\n(.*?)\\n?```$")
	htmlPattern    = regexp.MustCompile(`(?i)<(html|body|div|p|ul|ol|li|h[1-6]|strong|b|em|section|article|table|br)\b[^>]*>`)
	headingPattern = regexp.MustCompile(`^#{1,6}[ \t]+(.+?)[ \t#]*$`)
	dashPattern    = regexp.MustCompile(`^(\s*)[-+][ \t]+`)
)

// Normalizer rewrites model output into parser-friendly text.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	noise    []string
	headings bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithNoiseSelectors replaces the selectors removed from HTML responses.
func WithNoiseSelectors(selectors ...string) Option {
	return func(n *Normalizer) { n.noise = selectors }
}

// WithoutHeadingRewrite keeps markdown "#" headings as they are.
func WithoutHeadingRewrite() Option {
	return func(n *Normalizer) { n.headings = false }
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{noise: DefaultNoiseSelectors, headings: true}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns text in the line-oriented menu format.
// Errors are only returned for HTML that cannot be converted.
func (n *Normalizer) Normalize(text string) (string, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	text = UnwrapFence(text)

	if IsHTML(text) {
		md, err := n.htmlToMarkdown(text)
		if err != nil {
			return "", err
		}
		text = md
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if n.headings {
			if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				line = "**" + strings.Trim(m[1], "* ") + "**"
			}
		}
		lines[i] = dashPattern.ReplaceAllString(line, "$1* ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func (n *Normalizer) htmlToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	for _, sel := range n.noise {
		doc.Find(sel).Remove()
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}

// UnwrapFence returns the content of text when all of it is one fenced code
// block. Anything else is returned unchanged.
func UnwrapFence(text string) string {
	trimmed := strings.TrimSpace(text)
	m := fencePattern.FindStringSubmatch(trimmed)
	if m == nil || strings.Contains(m[1], "\n```") {
		return text
	}
	return m[1]
}

// IsHTML reports whether text looks like an HTML document or fragment.
func IsHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<") && htmlPattern.MatchString(trimmed)
}

// Normalize uses a default Normalizer.
func Normalize(text string) (string, error) {
	return New().Normalize(text)
}

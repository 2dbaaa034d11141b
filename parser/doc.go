// Package parser turns a language model's menu text into structured menus.
//
// Two entry points cover the two shapes menus arrive in:
//
//   - ParseLines reads one item per line and returns a *menu.Menu mapping
//     section names to decomposed items. Empty input is an error.
//   - ParseBlocks splits the text on blank lines, takes each block's first
//     line as the heading, and returns the items as undecomposed text.
//     Empty input yields no sections.
//
// A line-oriented menu looks like:
//
//	**Appetizers**
//	* Hummus (Vegan, Gluten-Free): Made with chickpeas.
//	* Falafel: (Vegan)
//	  Crispy chickpea fritters.
//
// Headers are lines wrapped in double asterisks. Items start with "*" and
// are split at the first colon: the name comes before it, the description
// after. The first parenthesized group in the name (or, failing that, in the
// description) holds comma-separated dietary tags. Indented lines after an
// item continue its description; unindented prose and "---" rules between
// items are skipped. Single-asterisk emphasis is unwrapped.
//
// With WithSections the parser only recognizes a closed set of section
// names. Lines starting with one of them open that section, and items under
// any other header are discarded.
//
// Malformed lines (items without a colon, items before the first header)
// are skipped rather than reported.
//
// Known limitation: item text containing more than one colon or nested
// parentheses is split naively; only the first colon and the innermost
// first group are considered.
//
// Example usage:
//
//	p := parser.NewParser(parser.WithSections("Appetizers", "Main Courses", "Desserts"))
//	m, err := p.ParseLines(response)
//	if errors.Is(err, parser.ErrEmptyInput) {
//	    // nothing to show
//	}
package parser

// Package formatter renders parsed menus back into text.
//
// Two styles are available:
//
//   - StylePlain emits the same convention the parser reads: "**Section**"
//     headings and "* Name (Tags):" item lines, each followed by an indented
//     description line. Empty sections keep their heading.
//   - StyleDisplay emits markdown for display: "### Section" headings,
//     glyph-prefixed "####" item lines, italic descriptions and a "---" rule
//     after each section. Empty sections are left out.
//
// Formatting is the approximate inverse of parsing. For well-formed input,
// parsing the plain output yields the same menu, but the text itself is not
// reproduced byte for byte.
package formatter

// Package export renders a generation result as a downloadable document.
//
// Formats:
//
//   - txt: the plain menu text, readable by the parser
//   - md: a markdown page with the restaurant name as title
//   - json, yaml: the full result including the parsed menu
//   - pdf: a printable menu
//
// Filenames follow the "<restaurant_name>_menu.<ext>" convention:
//
//	export.Filename("La Dolce Vita", "txt") // "la_dolce_vita_menu.txt"
package export

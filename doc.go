// Package culinary generates themed restaurant menus with a language model and
// turns the model's free-text answer into structured, displayable menus.
//
// The module is split into small packages that can be used on their own:
//
//   - menu: Item, Section and the ordered Menu mapping
//   - parser: line-oriented and blank-line-delimited menu parsers
//   - dietary: dietary tag normalization and the validation pass
//   - formatter: plain and display renderings of a parsed menu
//   - prompt: name and menu prompt templates
//   - provider: the language model boundary (Client, registry, config)
//   - gemini: Gemini REST backend for provider.Client
//   - normalize: cleanup of model output before parsing
//   - generator: restaurant name + menu generation and the last-result session
//   - export: download encodings (text, markdown, JSON, YAML, PDF)
//   - config: TOML/YAML configuration with hot reload
//   - server: HTTP API
//
// # Quick Start
//
// Parsing a menu:
//
//	import "github.com/randalmurphal/culinary/parser"
//	m, err := parser.ParseLines("**Appetizers**\n* Hummus (Vegan): Made with chickpeas.")
//
// Formatting it back:
//
//	import "github.com/randalmurphal/culinary/formatter"
//	text := formatter.Format(m)
//
// Generating a menu:
//
//	client, _ := provider.New("gemini", provider.FromEnv())
//	gen := generator.New(client)
//	res, err := gen.Generate(ctx, generator.Options{Cuisine: "Greek", Diets: []string{"Vegan"}})
package culinary

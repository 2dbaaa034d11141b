// Package prompt renders the prompts sent to the language model.
//
// Templates use a Handlebars-like syntax that is converted to Go template
// syntax before execution:
//
//	Hello, {{name}}!
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//	{{#each sections}}**{{.}}**{{/each}}
//	{{join diets ", "}}
//
// Go template syntax passes through unchanged, so {{$.count}} can reach the
// root variables from inside an #each block.
//
// Built-in helpers: join, upper, lower, trim, default, indent.
//
// The package ships the two prompts used for menu generation. NameTemplate
// asks for a single restaurant name; MenuTemplate asks for a menu in the
// line-oriented format the parser reads:
//
//	p := prompt.New()
//	name, _ := p.RenderName("Italian", []string{"Vegan"})
//	body, _ := p.RenderMenu("Trattoria Verde", "Italian", []string{"Vegan"}, 3)
package prompt

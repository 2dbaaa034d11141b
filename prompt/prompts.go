package prompt

import (
	"fmt"
	"strings"
)

// NameTemplate asks for a single restaurant name.
// Variables: cuisine, diets.
const NameTemplate = `You are a world-class chef. I want to open a restaurant that serves {{cuisine}} food for this {{join diets ", "}}. Suggest only one fancy name for this. Just the name.`

// MenuTemplate asks for a menu in the line-oriented format.
// Variables: restaurant_name, cuisine, diets, sections, no_of_items.
const MenuTemplate = `Based on the restaurant name '{{restaurant_name}}' and serving {{cuisine}} cuisine, create a menu with strictly {{join diets ", "}} options only.
Format the menu as follows:
{{#each sections}}
**{{.}}**
{{$.no_of_items}} items
* Item Name: (dietary info)
  Detailed description of the item
{{/each}}
Make the menu diverse and appealing to the specified cuisine and dietary restrictions.
Include clear dietary information (e.g., Nut-Free, Gluten-Free) for each item.
Follow the format strictly and consistently.`

// DefaultSections are the sections MenuTemplate asks for.
var DefaultSections = []string{"Appetizers", "Main Courses", "Desserts"}

// Prompts renders the name and menu prompts.
type Prompts struct {
	engine   *Engine
	name     string
	menu     string
	sections []string
}

// Option configures Prompts.
type Option func(*Prompts)

// WithNameTemplate replaces NameTemplate. Empty strings are ignored.
func WithNameTemplate(tmpl string) Option {
	return func(p *Prompts) {
		if tmpl != "" {
			p.name = tmpl
		}
	}
}

// WithMenuTemplate replaces MenuTemplate. Empty strings are ignored.
func WithMenuTemplate(tmpl string) Option {
	return func(p *Prompts) {
		if tmpl != "" {
			p.menu = tmpl
		}
	}
}

// WithSections sets the sections the menu prompt asks for.
func WithSections(names ...string) Option {
	return func(p *Prompts) {
		if len(names) > 0 {
			p.sections = append([]string(nil), names...)
		}
	}
}

// New creates Prompts with the built-in templates.
func New(opts ...Option) *Prompts {
	p := &Prompts{
		engine:   NewEngine(),
		name:     NameTemplate,
		menu:     MenuTemplate,
		sections: DefaultSections,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks that both templates parse.
func (p *Prompts) Validate() error {
	if _, err := p.engine.Variables(p.name); err != nil {
		return fmt.Errorf("name template: %w", err)
	}
	if _, err := p.engine.Variables(p.menu); err != nil {
		return fmt.Errorf("menu template: %w", err)
	}
	return nil
}

// RenderName renders the restaurant name prompt.
func (p *Prompts) RenderName(cuisine string, diets []string) (string, error) {
	return p.engine.Render(p.name, map[string]any{
		"cuisine": cuisine,
		"diets":   diets,
	})
}

// RenderMenu renders the menu prompt for n items per section.
func (p *Prompts) RenderMenu(restaurant, cuisine string, diets []string, n int) (string, error) {
	out, err := p.engine.Render(p.menu, map[string]any{
		"restaurant_name": restaurant,
		"cuisine":         cuisine,
		"diets":           diets,
		"sections":        p.sections,
		"no_of_items":     n,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RenderName renders NameTemplate.
func RenderName(cuisine string, diets []string) (string, error) {
	return New().RenderName(cuisine, diets)
}

// RenderMenu renders MenuTemplate with DefaultSections.
func RenderMenu(restaurant, cuisine string, diets []string, n int) (string, error) {
	return New().RenderMenu(restaurant, cuisine, diets, n)
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/culinary/dietary"
	"github.com/randalmurphal/culinary/menu"
	"github.com/randalmurphal/culinary/normalize"
	"github.com/randalmurphal/culinary/parser"
	"github.com/randalmurphal/culinary/prompt"
	"github.com/randalmurphal/culinary/provider"
)

// DefaultItemsPerSection is used when Options.ItemsPerSection is 0.
const DefaultItemsPerSection = 3

// Options are the inputs of one generation.
type Options struct {
	Cuisine         string   `json:"cuisine" yaml:"cuisine"`
	Diets           []string `json:"diets" yaml:"diets"`
	ItemsPerSection int      `json:"items_per_section,omitempty" yaml:"items_per_section,omitempty"`
}

// Normalize validates the options and returns a cleaned copy: the cuisine is
// trimmed, diets are normalized with empty entries dropped, and a zero item
// count becomes DefaultItemsPerSection.
func (o Options) Normalize() (Options, error) {
	o.Cuisine = strings.TrimSpace(o.Cuisine)
	if o.Cuisine == "" {
		return o, ErrMissingCuisine
	}

	diets := make([]string, 0, len(o.Diets))
	for _, d := range o.Diets {
		if d = dietary.Normalize(d); d != "" {
			diets = append(diets, d)
		}
	}
	if len(diets) == 0 {
		return o, ErrMissingDiets
	}
	o.Diets = diets

	switch {
	case o.ItemsPerSection == 0:
		o.ItemsPerSection = DefaultItemsPerSection
	case o.ItemsPerSection < 0:
		return o, fmt.Errorf("%w: got %d", ErrInvalidItemCount, o.ItemsPerSection)
	}
	return o, nil
}

// Result is the outcome of one generation.
type Result struct {
	ID             string              `json:"id" yaml:"id"`
	Cuisine        string              `json:"cuisine" yaml:"cuisine"`
	Diets          []string            `json:"diets" yaml:"diets"`
	RestaurantName string              `json:"restaurant_name" yaml:"restaurant_name"`
	Menu           string              `json:"menu" yaml:"menu"`
	Parsed         *menu.Menu          `json:"parsed" yaml:"parsed"`
	Sections       []menu.RawSection   `json:"sections" yaml:"sections"`
	GeneratedAt    time.Time           `json:"generated_at" yaml:"generated_at"`
	Usage          provider.TokenUsage `json:"usage" yaml:"usage"`
}

// Generator produces restaurant menus with a language model.
// A Generator is safe for concurrent use.
type Generator struct {
	client     provider.Client
	prompts    *prompt.Prompts
	parser     *parser.Parser
	normalizer *normalize.Normalizer
	escalation Escalation
	now        func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrompts sets the prompt templates.
func WithPrompts(p *prompt.Prompts) Option {
	return func(g *Generator) { g.prompts = p }
}

// WithParser sets the parser used on the menu response.
func WithParser(p *parser.Parser) Option {
	return func(g *Generator) { g.parser = p }
}

// WithNormalizer sets the response normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(g *Generator) { g.normalizer = n }
}

// WithEscalation sets the retry policy for model calls.
func WithEscalation(e Escalation) Option {
	return func(g *Generator) { g.escalation = e }
}

// WithClock sets the time source for Result.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator using client for model calls.
func New(client provider.Client, opts ...Option) *Generator {
	g := &Generator{
		client:     client,
		prompts:    prompt.New(),
		parser:     parser.NewParser(),
		normalizer: normalize.New(),
		escalation: DefaultEscalation,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the model for a restaurant name and then a menu.
// Validation errors are returned before any model call.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{
		ID:      uuid.NewString(),
		Cuisine: opts.Cuisine,
		Diets:   opts.Diets,
	}

	namePrompt, err := g.prompts.RenderName(opts.Cuisine, opts.Diets)
	if err != nil {
		return nil, fmt.Errorf("render name prompt: %w", err)
	}
	nameText, err := g.complete(ctx, "name", namePrompt, &res.Usage)
	if err != nil {
		return nil, fmt.Errorf("generate restaurant name: %w", err)
	}
	res.RestaurantName = CleanName(nameText)
	if res.RestaurantName == "" {
		return nil, ErrEmptyName
	}

	menuPrompt, err := g.prompts.RenderMenu(res.RestaurantName, opts.Cuisine, opts.Diets, opts.ItemsPerSection)
	if err != nil {
		return nil, fmt.Errorf("render menu prompt: %w", err)
	}
	res.Menu, err = g.complete(ctx, "menu", menuPrompt, &res.Usage)
	if err != nil {
		return nil, fmt.Errorf("generate menu: %w", err)
	}

	text, err := g.normalizer.Normalize(res.Menu)
	if err != nil {
		return nil, fmt.Errorf("normalize menu: %w", err)
	}
	if res.Parsed, err = g.parser.ParseLines(text); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	res.Sections = g.parser.ParseBlocks(text)
	res.GeneratedAt = g.now()

	slog.Info("menu generated",
		slog.String("id", res.ID),
		slog.String("cuisine", res.Cuisine),
		slog.String("restaurant", res.RestaurantName),
		slog.Int("sections", res.Parsed.Len()),
		slog.Int("items", res.Parsed.ItemCount()),
		slog.Duration("duration", time.Since(start)))

	return res, nil
}

func (g *Generator) complete(ctx context.Context, step, text string, usage *provider.TokenUsage) (string, error) {
	var content string
	err := g.escalation.run(ctx, step, func(ctx context.Context, model string) error {
		resp, err := g.client.Complete(ctx, provider.Request{
			Model:    model,
			Messages: []provider.Message{provider.NewTextMessage(provider.RoleUser, text)},
		})
		if err != nil {
			return err
		}
		usage.Add(resp.Usage)
		if strings.TrimSpace(resp.Content) == "" {
			return provider.ErrEmptyResponse
		}
		content = resp.Content
		return nil
	})
	if err != nil && errors.Is(err, provider.ErrEmptyResponse) {
		slog.Warn("model returned empty text", slog.String("step", step))
	}
	return content, err
}

// CleanName reduces a name response to the name itself: the first non-blank
// line with surrounding quotes, emphasis and whitespace removed.
func CleanName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Trim(strings.TrimSpace(line), "*\"'`# "); line != "" {
			return line
		}
	}
	return ""
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/culinary/dietary"
	"github.com/randalmurphal/culinary/generator"
	"github.com/randalmurphal/culinary/parser"
	"github.com/randalmurphal/culinary/prompt"
	"github.com/randalmurphal/culinary/provider"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Config is the complete application configuration.
type Config struct {
	Provider   provider.Config  `json:"provider" yaml:"provider" toml:"provider"`
	Parser     ParserConfig     `json:"parser" yaml:"parser" toml:"parser"`
	Dietary    DietaryConfig    `json:"dietary" yaml:"dietary" toml:"dietary"`
	Generation GenerationConfig `json:"generation" yaml:"generation" toml:"generation"`
	Server     ServerConfig     `json:"server" yaml:"server" toml:"server"`
}

// ParserConfig configures menu parsing.
type ParserConfig struct {
	// Sections restricts parsing to these section names. Empty accepts any
	// "**Heading**" line.
	Sections []string `json:"sections" yaml:"sections" toml:"sections"`

	// Validate enables the dietary validation pass. Default: true.
	Validate bool `json:"validate" yaml:"validate" toml:"validate"`

	// DietarySource is "either", "name" or "description". Default: "either".
	DietarySource string `json:"dietary_source" yaml:"dietary_source" toml:"dietary_source"`
}

// DietaryConfig configures the validation rules.
type DietaryConfig struct {
	// Rules replaces the built-in rules when non-empty.
	Rules []dietary.Rule `json:"rules" yaml:"rules" toml:"rules"`

	// ExtraRules are appended to the active rules.
	ExtraRules []dietary.Rule `json:"extra_rules" yaml:"extra_rules" toml:"extra_rules"`
}

// GenerationConfig configures menu generation.
type GenerationConfig struct {
	// ItemsPerSection is the default item count per section. Default: 3.
	ItemsPerSection int `json:"items_per_section" yaml:"items_per_section" toml:"items_per_section"`

	// Sections are the sections the menu prompt asks for.
	Sections []string `json:"sections" yaml:"sections" toml:"sections"`

	// NameTemplate and MenuTemplate override the built-in prompts.
	NameTemplate string `json:"name_template" yaml:"name_template" toml:"name_template"`
	MenuTemplate string `json:"menu_template" yaml:"menu_template" toml:"menu_template"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080".
	Addr string `json:"addr" yaml:"addr" toml:"addr"`

	// PublicURL is the externally visible base URL used in QR codes.
	// Empty derives it from the incoming request.
	PublicURL string `json:"public_url" yaml:"public_url" toml:"public_url"`

	// AllowedOrigins lists CORS origins. Empty allows all origins.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`

	// ReadTimeout and WriteTimeout bound each request.
	ReadTimeout  provider.Duration `json:"read_timeout" yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout provider.Duration `json:"write_timeout" yaml:"write_timeout" toml:"write_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider: provider.DefaultConfig(),
		Parser: ParserConfig{
			Validate:      true,
			DietarySource: "either",
		},
		Generation: GenerationConfig{
			ItemsPerSection: generator.DefaultItemsPerSection,
			Sections:        append([]string(nil), prompt.DefaultSections...),
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  provider.Duration(30 * time.Second),
			WriteTimeout: provider.Duration(3 * time.Minute),
		},
	}
}

// Load reads the file at path over Default, applies the environment and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv applies environment variables over the current values.
//
// Besides the provider variables (see provider.Config.LoadFromEnv):
//   - CULINARY_SECTIONS: comma-separated parser section whitelist
//   - CULINARY_VALIDATE: enable dietary validation (bool)
//   - CULINARY_DIETARY_SOURCE: either, name or description
//   - CULINARY_ITEMS_PER_SECTION: default item count
//   - CULINARY_ADDR: server listen address
//   - CULINARY_PUBLIC_URL: server public base URL
//   - CULINARY_ALLOWED_ORIGINS: comma-separated CORS origins
func (c *Config) LoadFromEnv() {
	c.Provider.LoadFromEnv()

	if v := env("SECTIONS"); v != "" {
		c.Parser.Sections = splitList(v)
	}
	if v := env("VALIDATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Parser.Validate = b
		}
	}
	if v := env("DIETARY_SOURCE"); v != "" {
		c.Parser.DietarySource = v
	}
	if v := env("ITEMS_PER_SECTION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generation.ItemsPerSection = n
		}
	}
	if v := env("ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := env("PUBLIC_URL"); v != "" {
		c.Server.PublicURL = v
	}
	if v := env("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
}

func env(name string) string {
	return os.Getenv(provider.EnvPrefix + name)
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Provider.Validate(); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if _, ok := parser.ParseDietarySource(c.Parser.DietarySource); !ok {
		return fmt.Errorf("parser: dietary_source must be either, name or description, got %q", c.Parser.DietarySource)
	}
	for i, r := range append(append([]dietary.Rule(nil), c.Dietary.Rules...), c.Dietary.ExtraRules...) {
		if strings.TrimSpace(r.Tag) == "" || len(r.Triggers) == 0 {
			return fmt.Errorf("dietary: rule %d needs a tag and at least one trigger", i+1)
		}
	}
	if c.Generation.ItemsPerSection < 1 {
		return fmt.Errorf("generation: items_per_section must be >= 1, got %d", c.Generation.ItemsPerSection)
	}
	if err := c.NewPrompts().Validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server: addr is required")
	}
	return nil
}

// NewValidator builds the dietary validator.
func (c Config) NewValidator() *dietary.Validator {
	rules := c.Dietary.Rules
	if len(rules) == 0 {
		rules = dietary.DefaultRules()
	}
	return dietary.NewValidator(append(append([]dietary.Rule(nil), rules...), c.Dietary.ExtraRules...)...)
}

// NewParser builds the menu parser.
func (c Config) NewParser() *parser.Parser {
	source, _ := parser.ParseDietarySource(c.Parser.DietarySource)
	opts := []parser.Option{
		parser.WithSections(c.Parser.Sections...),
		parser.WithDietarySource(source),
	}
	if c.Parser.Validate {
		opts = append(opts, parser.WithValidator(c.NewValidator()))
	} else {
		opts = append(opts, parser.WithoutValidation())
	}
	return parser.NewParser(opts...)
}

// NewPrompts builds the prompt templates.
func (c Config) NewPrompts() *prompt.Prompts {
	return prompt.New(
		prompt.WithSections(c.Generation.Sections...),
		prompt.WithNameTemplate(c.Generation.NameTemplate),
		prompt.WithMenuTemplate(c.Generation.MenuTemplate),
	)
}

// NewGenerator builds a generator around client.
func (c Config) NewGenerator(client provider.Client) *generator.Generator {
	return generator.New(client,
		generator.WithParser(c.NewParser()),
		generator.WithPrompts(c.NewPrompts()),
		generator.WithEscalation(generator.WithFallback(c.Provider.FallbackModel)),
	)
}

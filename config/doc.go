// Package config loads culinary settings from TOML, YAML or JSON files and
// the environment.
//
// Load starts from Default, decodes the file chosen by its extension, then
// applies CULINARY_* environment variables and validates the result:
//
//	cfg, err := config.Load("culinary.toml")
//	p := cfg.NewParser()
//
// Watch reloads the file when it changes:
//
//	err := config.Watch(ctx, "culinary.toml", func(cfg config.Config) {
//	    srv.SetParser(cfg.NewParser())
//	})
//
// An example TOML file:
//
//	[provider]
//	provider = "gemini"
//	model = "gemini-2.0-flash"
//	timeout = "90s"
//
//	[parser]
//	sections = ["Appetizers", "Main Courses", "Desserts"]
//	dietary_source = "either"
//
//	[[dietary.extra_rules]]
//	tag = "Dairy-Free"
//	triggers = ["butter", "ghee"]
//
//	[server]
//	addr = ":8080"
package config

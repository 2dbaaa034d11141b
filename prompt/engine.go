package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders prompt templates.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates an engine with the built-in helpers.
func NewEngine() *Engine {
	return &Engine{funcs: defaultFuncs()}
}

// AddFunc registers a helper under name. Helpers added here are called with
// Go template syntax ({{name .arg}}).
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// Render converts the template syntax and executes it with variables.
// Missing variables are an execution error.
func (e *Engine) Render(tmpl string, variables map[string]any) (string, error) {
	t, err := e.parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := t.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return buf.String(), nil
}

// Variables validates the template and returns the root variable names it
// references, in order of first use.
func (e *Engine) Variables(tmpl string) ([]string, error) {
	if _, err := e.parse(tmpl); err != nil {
		return nil, err
	}
	return extractVariables(tmpl), nil
}

func (e *Engine) parse(tmpl string) (*template.Template, error) {
	if tmpl == "" {
		return nil, ErrEmpty
	}
	t, err := template.New("prompt").
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(convertSyntax(tmpl, e.funcs))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return t, nil
}

// ValidateVariables checks that every required variable is provided.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"join":    strings.Join,
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"default": defaultValue,
		"indent":  indent,
	}
}

// defaultValue returns def when val is nil or an empty string.
func defaultValue(val, def any) any {
	if val == nil {
		return def
	}
	if s, ok := val.(string); ok && s == "" {
		return def
	}
	return val
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	prefix := strings.Repeat(" ", n)
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

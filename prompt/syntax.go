package prompt

import (
	"regexp"
	"strings"
	"text/template"
)

var (
	ifPattern     = regexp.MustCompile(`\{\{#if\s+([a-zA-Z_]\w*)\s*\}\}`)
	eachPattern   = regexp.MustCompile(`\{\{#each\s+([a-zA-Z_]\w*)\s*\}\}`)
	actionPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][^{}]*?)\s*\}\}`)
	identPattern  = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
	rootPattern   = regexp.MustCompile(`\$\.([a-zA-Z_]\w*)`)
)

// keywords are Go template words that are never variables.
var keywords = map[string]bool{
	"else": true, "end": true, "if": true, "range": true, "with": true,
	"define": true, "template": true, "block": true, "true": true, "false": true, "nil": true,
}

// convertSyntax rewrites Handlebars-like actions into Go template actions:
//
//	{{name}}               -> {{.name}}
//	{{#if x}}...{{/if}}    -> {{if .x}}...{{end}}
//	{{#each xs}}...{{/each}} -> {{range .xs}}...{{end}}
//	{{join diets ", "}}    -> {{join .diets ", "}}
//
// Actions already in Go syntax are left alone.
func convertSyntax(input string, funcs template.FuncMap) string {
	out := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	out = eachPattern.ReplaceAllString(out, "{{range .$1}}")
	out = strings.NewReplacer("{{/if}}", "{{end}}", "{{/each}}", "{{end}}").Replace(out)

	return actionPattern.ReplaceAllStringFunc(out, func(action string) string {
		body := actionPattern.FindStringSubmatch(action)[1]
		args := splitArguments(body)
		if len(args) == 0 || keywords[args[0]] {
			return action
		}
		if _, ok := funcs[args[0]]; ok {
			return "{{" + args[0] + " " + strings.Join(convertArguments(args[1:]), " ") + "}}"
		}
		if len(args) == 1 && identPattern.MatchString(args[0]) {
			return "{{." + args[0] + "}}"
		}
		return action
	})
}

// convertArguments prefixes bare identifiers with a dot. Literals, dotted
// fields and $ references are kept.
func convertArguments(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if identPattern.MatchString(a) && !keywords[a] {
			out[i] = "." + a
			continue
		}
		out[i] = a
	}
	return out
}

// splitArguments splits on spaces outside quoted strings.
func splitArguments(s string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
	)
	for _, ch := range s {
		switch {
		case quote == 0 && (ch == '"' || ch == '\''):
			quote = ch
			current.WriteRune(ch)
		case quote != 0 && ch == quote:
			quote = 0
			current.WriteRune(ch)
		case quote == 0 && ch == ' ':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// extractVariables returns the root variable names referenced by a template.
func extractVariables(tmpl string) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] && !keywords[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, m := range ifPattern.FindAllStringSubmatch(tmpl, -1) {
		add(m[1])
	}
	for _, m := range eachPattern.FindAllStringSubmatch(tmpl, -1) {
		add(m[1])
	}
	for _, m := range actionPattern.FindAllStringSubmatch(tmpl, -1) {
		args := splitArguments(m[1])
		if len(args) == 1 && identPattern.MatchString(args[0]) {
			add(args[0])
			continue
		}
		for _, a := range args[1:] {
			if identPattern.MatchString(a) {
				add(a)
			}
		}
	}
	for _, m := range rootPattern.FindAllStringSubmatch(tmpl, -1) {
		add(m[1])
	}
	return names
}

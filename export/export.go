package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/culinary/formatter"
	"github.com/randalmurphal/culinary/generator"
)

// Format names an export format. The value doubles as the file extension.
type Format string

// Supported formats.
const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatPDF      Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatPDF}

// ErrUnknownFormat is returned by ForFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrNoResult is returned when there is nothing to export.
var ErrNoResult = errors.New("no result to export")

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatPDF:
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}

// Document is a rendered export.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer renders a result in one format.
type Renderer func(r *generator.Result) ([]byte, error)

// ForFormat returns the format and renderer for a name such as "txt" or
// "markdown". Matching is case-insensitive; "" selects txt.
func ForFormat(name string) (Format, Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "txt", "text":
		return FormatText, Text, nil
	case "md", "markdown":
		return FormatMarkdown, Markdown, nil
	case "json":
		return FormatJSON, JSON, nil
	case "yaml", "yml":
		return FormatYAML, YAML, nil
	case "pdf":
		return FormatPDF, PDF, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Export renders r in the named format.
func Export(r *generator.Result, name string) (Document, error) {
	if r == nil || r.Parsed == nil {
		return Document{}, ErrNoResult
	}
	f, render, err := ForFormat(name)
	if err != nil {
		return Document{}, err
	}
	data, err := render(r)
	if err != nil {
		return Document{}, fmt.Errorf("export %s: %w", f, err)
	}
	return Document{
		Filename:    Filename(r.RestaurantName, string(f)),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}

// Text renders the parsed menu in the plain format.
func Text(r *generator.Result) ([]byte, error) {
	return []byte(formatter.Format(r.Parsed)), nil
}

// Markdown renders the restaurant name as a title followed by the display
// format.
func Markdown(r *generator.Result) ([]byte, error) {
	var b strings.Builder
	if r.RestaurantName != "" {
		b.WriteString("# " + r.RestaurantName + "\n\n")
	}
	b.WriteString(formatter.FormatDisplay(r.Parsed))
	return []byte(b.String()), nil
}

// JSON renders the full result as indented JSON.
func JSON(r *generator.Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAML renders the full result as YAML.
func YAML(r *generator.Result) ([]byte, error) {
	return yaml.Marshal(r)
}

// Filename builds "<name>_menu.<ext>" with the name lower-cased and spaces
// replaced by underscores. Path separators and quotes are dropped.
func Filename(restaurant, ext string) string {
	name := strings.ToLower(strings.TrimSpace(restaurant))
	name = strings.NewReplacer(" ", "_", "/", "", "\\", "", "\"", "", ":", "").Replace(name)
	if name == "" {
		return "menu." + ext
	}
	return name + "_menu." + ext
}

package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/culinary/generator"
	"github.com/randalmurphal/culinary/menu"
	"github.com/randalmurphal/culinary/parser"
)

func sampleResult() *generator.Result {
	m := menu.New()
	m.AddItem("Appetizers", menu.Item{Name: "Bruschetta", Description: "Grilled bread.", Dietary: []string{"Vegan"}})
	m.AddItem("Desserts", menu.Item{Name: "Crème Brûlée", Description: "Caramelised custard.", Dietary: []string{"Vegetarian"}})
	return &generator.Result{
		ID:             "abc",
		Cuisine:        "French",
		Diets:          []string{"Vegetarian"},
		RestaurantName: "Le Petit Jardin",
		Menu:           "raw",
		Parsed:         m,
		Sections:       []menu.RawSection{{Heading: "Appetizers", Items: []string{"Bruschetta"}}},
		GeneratedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"La Dolce Vita", "txt", "la_dolce_vita_menu.txt"},
		{"  Spice Route ", "pdf", "spice_route_menu.pdf"},
		{"AC/DC Diner", "md", "acdc_diner_menu.md"},
		{"", "json", "menu.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.name, tt.ext))
	}
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{"", "TXT", "text", "md", "Markdown", "json", "yml", "yaml", "pdf"} {
		f, render, err := ForFormat(name)
		require.NoError(t, err, name)
		assert.NotNil(t, render)
		assert.Contains(t, Formats, f)
	}

	_, _, err := ForFormat("docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestExport_Text(t *testing.T) {
	doc, err := Export(sampleResult(), "txt")
	require.NoError(t, err)

	assert.Equal(t, "le_petit_jardin_menu.txt", doc.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", doc.ContentType)

	m, err := parser.ParseLines(string(doc.Data))
	require.NoError(t, err)
	assert.True(t, sampleResult().Parsed.Equal(m))
}

func TestExport_Markdown(t *testing.T) {
	doc, err := Export(sampleResult(), "md")
	require.NoError(t, err)
	text := string(doc.Data)
	assert.True(t, strings.HasPrefix(text, "# Le Petit Jardin\n\n### Appetizers\n"))
	assert.Contains(t, text, "Crème Brûlée (Vegetarian)")
}

func TestExport_JSON(t *testing.T) {
	doc, err := Export(sampleResult(), "json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", doc.ContentType)

	var got struct {
		ID             string          `json:"id"`
		RestaurantName string          `json:"restaurant_name"`
		Parsed         json.RawMessage `json:"parsed"`
	}
	require.NoError(t, json.Unmarshal(doc.Data, &got))
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "Le Petit Jardin", got.RestaurantName)

	m := menu.New()
	require.NoError(t, json.Unmarshal(got.Parsed, m))
	assert.Equal(t, []string{"Appetizers", "Desserts"}, m.Names())
}

func TestExport_YAML(t *testing.T) {
	doc, err := Export(sampleResult(), "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(doc.Data, &got))
	assert.Equal(t, "Le Petit Jardin", got["restaurant_name"])
	assert.Contains(t, string(doc.Data), "Appetizers:")
}

func TestExport_PDF(t *testing.T) {
	doc, err := Export(sampleResult(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF-"))
}

func TestExport_NoResult(t *testing.T) {
	_, err := Export(nil, "txt")
	assert.True(t, errors.Is(err, ErrNoResult))

	_, err = Export(&generator.Result{}, "txt")
	assert.True(t, errors.Is(err, ErrNoResult))
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export(sampleResult(), "docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

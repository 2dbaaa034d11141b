package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/culinary/parser"
)

func TestNormalize_PlainTextUnchanged(t *testing.T) {
	text := "**Appetizers**\n* Hummus (Vegan): Chickpea dip.\n  Served warm."
	got, err := Normalize(text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestNormalize_LineEndings(t *testing.T) {
	got, err := Normalize("**Mains**  \r\n* Soup: Hot.\r\n")
	require.NoError(t, err)
	assert.Equal(t, "**Mains**\n* Soup: Hot.", got)
}

func TestUnwrapFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain fence", "```\n**Mains**\n* Soup: Hot.\n```", "**Mains**\n* Soup: Hot."},
		{"language tag", "```markdown\n**Mains**\n```", "**Mains**"},
		{"surrounding whitespace", "\n  ```text\nabc\n```  \n", "abc"},
		{"not fully fenced", "Intro\n```\ncode\n```", "Intro\n```\ncode\n```"},
		{"two fences", "```\na\n```\n\n```\nb\n```", "```\na\n```\n\n```\nb\n```"},
		{"no fence", "**Mains**", "**Mains**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapFence(tt.in))
		})
	}
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("<html><body><p>x</p></body></html>"))
	assert.True(t, IsHTML("  <ul><li>x</li></ul>"))
	assert.False(t, IsHTML("**Mains**\n* Soup: Hot."))
	assert.False(t, IsHTML("<3 our food"))
	assert.False(t, IsHTML("Soup <b>hot</b>"))
}

func TestNormalize_MarkdownHeadingsAndDashes(t *testing.T) {
	text := "## Appetizers\n- Hummus (Vegan): Chickpea dip.\n### **Desserts** ###\n+ Kulfi: Frozen."
	got, err := Normalize(text)
	require.NoError(t, err)
	assert.Equal(t, "**Appetizers**\n* Hummus (Vegan): Chickpea dip.\n**Desserts**\n* Kulfi: Frozen.", got)

	kept, err := New(WithoutHeadingRewrite()).Normalize("## Appetizers")
	require.NoError(t, err)
	assert.Equal(t, "## Appetizers", kept)
}

func TestNormalize_HTMLResponse(t *testing.T) {
	html := `<html><head><title>Menu</title><style>p{color:red}</style></head>
<body>
<script>alert("hi")</script>
<h2>Appetizers</h2>
<ul><li><strong>Hummus</strong> (Vegan, Gluten-Free): Made with chickpeas.</li></ul>
<h2>Desserts</h2>
<ul><li>Kulfi (Vegetarian): Frozen dessert.</li></ul>
</body></html>`

	got, err := Normalize(html)
	require.NoError(t, err)
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color:red")
	assert.NotContains(t, got, "<")

	m, err := parser.ParseLines(got)
	require.NoError(t, err)
	assert.Equal(t, []string{"Appetizers", "Desserts"}, m.Names())

	items, _ := m.Items("Appetizers")
	require.Len(t, items, 1)
	assert.Equal(t, "Hummus", items[0].Name)
	assert.Equal(t, []string{"Vegan", "Gluten-Free"}, items[0].Dietary)
}

func TestNormalize_FencedHTML(t *testing.T) {
	got, err := Normalize("```html\n<h3>Mains</h3><ul><li>Soup: Hot.</li></ul>\n```")
	require.NoError(t, err)

	m, err := parser.ParseLines(got)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ItemCount())
}

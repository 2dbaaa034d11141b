package menu

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleMenu() *Menu {
	m := New()
	m.AddItem("Appetizers", Item{Name: "Hummus", Description: "Made with chickpeas.", Dietary: []string{"Vegan", "Gluten-Free"}})
	m.AddItem("Appetizers", Item{Name: "Falafel", Description: "Crispy."})
	m.AddSection("Drinks")
	m.AddItem("Desserts", Item{Name: "Baklava", Dietary: []string{"Vegetarian"}})
	return m
}

func TestMenu_InsertionOrder(t *testing.T) {
	m := sampleMenu()

	assert.Equal(t, []string{"Appetizers", "Drinks", "Desserts"}, m.Names())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.ItemCount())

	// Re-adding keeps position and items.
	m.AddSection("Appetizers")
	items, ok := m.Items("Appetizers")
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, "Appetizers", m.Names()[0])
}

func TestMenu_EmptySection(t *testing.T) {
	m := sampleMenu()

	items, ok := m.Items("Drinks")
	assert.True(t, ok)
	assert.Empty(t, items)

	_, ok = m.Items("Mains")
	assert.False(t, ok)
	assert.False(t, m.Has("Mains"))
}

func TestMenu_Sections(t *testing.T) {
	sections := sampleMenu().Sections()

	require.Len(t, sections, 3)
	assert.Equal(t, "Appetizers", sections[0].Name)
	assert.Equal(t, "Hummus", sections[0].Items[0].Name)
	assert.Equal(t, "Desserts", sections[2].Name)
}

func TestMenu_Equal(t *testing.T) {
	a := sampleMenu()
	b := sampleMenu()
	assert.True(t, a.Equal(b))

	b.AddItem("Desserts", Item{Name: "Halva"})
	assert.False(t, a.Equal(b))

	c := New()
	c.AddSection("Drinks")
	c.AddSection("Appetizers")
	d := New()
	d.AddSection("Appetizers")
	d.AddSection("Drinks")
	assert.False(t, c.Equal(d), "order matters")

	var nilMenu *Menu
	assert.False(t, a.Equal(nilMenu))
}

func TestItem_EqualNilAndEmptyTags(t *testing.T) {
	a := Item{Name: "Soup"}
	b := Item{Name: "Soup", Dietary: []string{}}
	assert.True(t, a.Equal(b))
}

func TestMenu_CloneIsDeep(t *testing.T) {
	a := sampleMenu()
	c := a.Clone()
	require.True(t, a.Equal(c))

	items, _ := c.Items("Appetizers")
	items[0].Dietary[0] = "Changed"

	orig, _ := a.Items("Appetizers")
	assert.Equal(t, "Vegan", orig[0].Dietary[0])
}

func TestMenu_JSONKeepsOrder(t *testing.T) {
	m := New()
	m.AddItem("Zebra", Item{Name: "Z"})
	m.AddItem("Alpha", Item{Name: "A", Dietary: []string{"Vegan"}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Zebra":[{"name":"Z","description":"","dietary":[]}],"Alpha":[{"name":"A","description":"","dietary":["Vegan"]}]}`, string(data))
	assert.Less(t, strings.Index(string(data), "Zebra"), strings.Index(string(data), "Alpha"))

	var decoded Menu
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"Zebra", "Alpha"}, decoded.Names())
	assert.True(t, m.Equal(&decoded))
}

func TestMenu_UnmarshalJSONRejectsArray(t *testing.T) {
	var m Menu
	err := json.Unmarshal([]byte(`[1,2]`), &m)
	assert.Error(t, err)
}

func TestMenu_YAMLKeepsOrder(t *testing.T) {
	m := sampleMenu()

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(data), "Drinks"), strings.Index(string(data), "Desserts"))

	var decoded Menu
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, m.Names(), decoded.Names())
	assert.True(t, m.Equal(&decoded))
}

func TestSchema(t *testing.T) {
	s := Schema()

	assert.Equal(t, "object", s.Type)
	require.NotNil(t, s.AdditionalProperties)
	assert.Equal(t, "array", s.AdditionalProperties.Type)
	require.NotNil(t, s.AdditionalProperties.Items)

	props := s.AdditionalProperties.Items.Properties
	require.NotNil(t, props)
	for _, field := range []string{"name", "description", "dietary"} {
		_, ok := props.Get(field)
		assert.True(t, ok, "missing property %s", field)
	}
}

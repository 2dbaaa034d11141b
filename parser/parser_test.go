package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/culinary/menu"
)

// =============================================================================
// ParseLines Tests
// =============================================================================

func TestParseLines_SingleItem(t *testing.T) {
	m, err := ParseLines("**Appetizers**\n* Hummus (Vegan, Gluten-Free): Made with chickpeas.\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"Appetizers"}, m.Names())
	items, ok := m.Items("Appetizers")
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Hummus", items[0].Name)
	assert.Equal(t, "Made with chickpeas.", items[0].Description)
	assert.Equal(t, []string{"Vegan", "Gluten-Free"}, items[0].Dietary)
}

func TestParseLines_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		m, err := ParseLines(text)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, ErrEmptyInput), "input %q", text)
	}
}

func TestParseLines_ItemsBeforeHeaderDropped(t *testing.T) {
	m, err := ParseLines("* Orphan: desc\n**Mains**\n* Soup: desc")
	require.NoError(t, err)

	want := menu.New()
	want.AddItem("Mains", menu.Item{Name: "Soup", Description: "desc"})
	assert.True(t, want.Equal(m), "got %v", m.Names())
}

func TestParseLines_Validation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "vegan with cheese",
			line: "* Pizza (Vegan): Topped with cheese.",
			want: []string{"Vegetarian"},
		},
		{
			name: "gluten-free with pasta",
			line: "* Penne (Gluten-Free, Vegan): Fresh pasta in tomato sauce.",
			want: []string{"Vegan"},
		},
		{
			name: "nut-free with almonds",
			line: "* Cake (nut free): Almond sponge.",
			want: []string{},
		},
		{
			name: "spellings are normalized",
			line: "* Salad (vegan, gluten free): Leaves.",
			want: []string{"Vegan", "Gluten-Free"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseLines("**Mains**\n" + tt.line)
			require.NoError(t, err)
			items, _ := m.Items("Mains")
			require.Len(t, items, 1)
			assert.ElementsMatch(t, tt.want, items[0].Dietary)
		})
	}
}

func TestParseLines_WithoutValidation(t *testing.T) {
	p := NewParser(WithoutValidation())
	assert.False(t, p.Validates())

	m, err := p.ParseLines("**Mains**\n* Pizza (Vegan): Topped with cheese.")
	require.NoError(t, err)
	items, _ := m.Items("Mains")
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Vegan"}, items[0].Dietary)
}

func TestParseLines_ItemShapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want menu.Item
		skip bool
	}{
		{
			name: "no tags",
			line: "* Bread: Warm and crusty.",
			want: menu.Item{Name: "Bread", Description: "Warm and crusty."},
		},
		{
			name: "bold name and glyph",
			line: "* \U0001F37D\uFE0F **Samosa (Vegetarian)**: Fried pastry.",
			want: menu.Item{Name: "Samosa", Description: "Fried pastry.", Dietary: []string{"Vegetarian"}},
		},
		{
			name: "tags in description",
			line: "* Dal: (Vegan) Slow-cooked lentils.",
			want: menu.Item{Name: "Dal", Description: "Slow-cooked lentils.", Dietary: []string{"Vegan"}},
		},
		{
			name: "unclosed group at end of name",
			line: "* Tea (Vegan: Spiced chai.",
			want: menu.Item{Name: "Tea", Description: "Spiced chai.", Dietary: []string{"Vegan"}},
		},
		{
			name: "split at first colon",
			line: "* Platter: Dips: hummus and baba ganoush.",
			want: menu.Item{Name: "Platter", Description: "Dips: hummus and baba ganoush."},
		},
		{
			name: "empty description",
			line: "* Sorbet (Vegan):",
			want: menu.Item{Name: "Sorbet", Dietary: []string{"Vegan"}},
		},
		{
			name: "no colon is skipped",
			line: "* Just a note without separator",
			skip: true,
		},
		{
			name: "empty name is skipped",
			line: "* (Vegan): Mystery dish.",
			skip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseLines("**Mains**\n" + tt.line)
			require.NoError(t, err)
			items, ok := m.Items("Mains")
			require.True(t, ok)
			if tt.skip {
				assert.Empty(t, items)
				return
			}
			require.Len(t, items, 1)
			assert.True(t, tt.want.Equal(items[0]), "got %+v", items[0])
		})
	}
}

func TestParseLines_ContinuationLines(t *testing.T) {
	text := `**Appetizers**
* Samosa: (Vegetarian)
  Crisp pastry filled with
  spiced potatoes.
* Pakora (Vegan):
	Chickpea batter fritters.
* Dosa (Vegan):
Rice crepe.

Some closing remark.
---
`
	m, err := ParseLines(text)
	require.NoError(t, err)

	items, _ := m.Items("Appetizers")
	require.Len(t, items, 3)
	assert.Equal(t, "Samosa", items[0].Name)
	assert.Equal(t, "Crisp pastry filled with spiced potatoes.", items[0].Description)
	assert.Equal(t, []string{"Vegetarian"}, items[0].Dietary)
	assert.Equal(t, "Chickpea batter fritters.", items[1].Description, "tab indent continues")
	assert.Empty(t, items[2].Description, "unindented prose and rules are skipped")
}

func TestParseLines_IndentedContinuationWithColon(t *testing.T) {
	p := NewParser(WithSections("Appetizers"))
	m, err := p.ParseLines("**Appetizers**\nHummus (Vegan):\n  Dip. Pairs well with: pita chips\nFalafel: Fritters.\n")
	require.NoError(t, err)

	items, _ := m.Items("Appetizers")
	require.Len(t, items, 2)
	assert.Equal(t, "Dip. Pairs well with: pita chips", items[0].Description)
	assert.Equal(t, "Falafel", items[1].Name)
}

func TestParseLines_ProseDoesNotFeedValidation(t *testing.T) {
	m, err := ParseLines("**Desserts**\n* Sorbet (Vegan): Lemon ice.\nServed with whipped cream on request.\n")
	require.NoError(t, err)

	items, _ := m.Items("Desserts")
	require.Len(t, items, 1)
	assert.Equal(t, "Lemon ice.", items[0].Description)
	assert.Equal(t, []string{"Vegan"}, items[0].Dietary)
}

func TestParseLines_ItalicEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want menu.Item
	}{
		{
			name: "italic description",
			in:   "**Appetizers**\n* Hummus (Vegan): *Creamy chickpea dip*\n",
			want: menu.Item{Name: "Hummus", Description: "Creamy chickpea dip", Dietary: []string{"Vegan"}},
		},
		{
			name: "italic words inside description",
			in:   "**Appetizers**\n* Hummus: Made with *fresh* herbs and *lemon juice*.\n",
			want: menu.Item{Name: "Hummus", Description: "Made with fresh herbs and lemon juice."},
		},
		{
			name: "italic name",
			in:   "**Appetizers**\n* *Hummus* (Vegan): Dip.\n",
			want: menu.Item{Name: "Hummus", Description: "Dip.", Dietary: []string{"Vegan"}},
		},
		{
			name: "indented italic continuation",
			in:   "**Appetizers**\n* Hummus (Vegan):\n  *Creamy chickpea dip*\n",
			want: menu.Item{Name: "Hummus", Description: "Creamy chickpea dip", Dietary: []string{"Vegan"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseLines(tt.in)
			require.NoError(t, err)
			items, _ := m.Items("Appetizers")
			require.Len(t, items, 1)
			assert.True(t, tt.want.Equal(items[0]), "got %+v", items[0])
		})
	}
}

func TestParseLines_ContinuationAfterRejectedItem(t *testing.T) {
	m, err := ParseLines("**Mains**\n* Soup: Hot.\n* no colon here\n  stray text")
	require.NoError(t, err)
	items, _ := m.Items("Mains")
	require.Len(t, items, 1)
	assert.Equal(t, "Hot.", items[0].Description)
}

func TestParseLines_FreeFormKeepsEmptySections(t *testing.T) {
	m, err := ParseLines("**Starters**\n**Mains**\n* Soup: Hot.\n**Sweets**\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"Starters", "Mains", "Sweets"}, m.Names())
	starters, ok := m.Items("Starters")
	assert.True(t, ok)
	assert.Empty(t, starters)
}

func TestParseLines_RepeatedHeaderAppends(t *testing.T) {
	m, err := ParseLines("**Mains**\n* A: a\n**Sides**\n* B: b\n**Mains**\n* C: c")
	require.NoError(t, err)

	assert.Equal(t, []string{"Mains", "Sides"}, m.Names())
	items, _ := m.Items("Mains")
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[1].Name)
}

// =============================================================================
// Whitelist Tests
// =============================================================================

func TestParseLines_Whitelist(t *testing.T) {
	p := NewParser(WithSections(DefaultSections...))
	assert.Equal(t, DefaultSections, p.Sections())

	text := `Here is your menu!
**appetizers**
Hummus (Vegan): Chickpea dip.
**Chef's Specials**
* Secret: Not listed.
Main Courses
* Curry (Vegan): Coconut curry.
**Desserts**:
* Kulfi (Vegetarian): Frozen milk dessert.
`
	m, err := p.ParseLines(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Appetizers", "Main Courses", "Desserts"}, m.Names())
	for _, name := range m.Names() {
		items, _ := m.Items(name)
		assert.Len(t, items, 1, name)
	}
	assert.Equal(t, 3, m.ItemCount())
}

func TestParseLines_WhitelistSectionsAppearOnlyWhenSeen(t *testing.T) {
	p := NewParser(WithSections(DefaultSections...))
	m, err := p.ParseLines("**Desserts**\n* Kulfi: Frozen.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Desserts"}, m.Names())
}

func TestParseLines_WhitelistPrefersLongestName(t *testing.T) {
	p := NewParser(WithSections("Main", "Main Courses"))
	m, err := p.ParseLines("**Main Courses**\n* Curry: Hot.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Courses"}, m.Names())
}

func TestNewParser_FreeFormSections(t *testing.T) {
	assert.Nil(t, NewParser().Sections())
	assert.Nil(t, NewParser(WithSections("  ", "")).Sections())
}

// =============================================================================
// Dietary Source Tests
// =============================================================================

func TestParseLines_DietarySource(t *testing.T) {
	line := "**Mains**\n* Curry (Vegan): Coconut curry (Gluten-Free)."

	tests := []struct {
		source   DietarySource
		wantTags []string
		wantName string
		wantDesc string
	}{
		{DietaryFromEither, []string{"Vegan"}, "Curry", "Coconut curry (Gluten-Free)."},
		{DietaryFromName, []string{"Vegan"}, "Curry", "Coconut curry (Gluten-Free)."},
		{DietaryFromDescription, []string{"Gluten-Free"}, "Curry (Vegan)", "Coconut curry ."},
	}

	for _, tt := range tests {
		m, err := NewParser(WithDietarySource(tt.source)).ParseLines(line)
		require.NoError(t, err)
		items, _ := m.Items("Mains")
		require.Len(t, items, 1)
		assert.Equal(t, tt.wantTags, items[0].Dietary)
		assert.Equal(t, tt.wantName, items[0].Name)
		assert.Equal(t, tt.wantDesc, items[0].Description)
	}
}

func TestParseDietarySource(t *testing.T) {
	tests := []struct {
		in   string
		want DietarySource
		ok   bool
	}{
		{"", DietaryFromEither, true},
		{"either", DietaryFromEither, true},
		{"Name", DietaryFromName, true},
		{" description ", DietaryFromDescription, true},
		{"title", DietaryFromEither, false},
	}
	for _, tt := range tests {
		got, ok := ParseDietarySource(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDietarySource(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// =============================================================================
// ParseBlocks Tests
// =============================================================================

func TestParseBlocks(t *testing.T) {
	text := `**Appetizers**
* Samosa
Crisp pastry.
* Pakora

**Empty Section**
just prose

Intro line without items

**Desserts**
Kulfi
* Gulab Jamun`

	got := ParseBlocks(text)
	want := []menu.RawSection{
		{Heading: "Appetizers", Items: []string{"Samosa\nCrisp pastry.", "Pakora"}},
		{Heading: "Empty Section", Items: []string{"just prose"}},
		{Heading: "Desserts", Items: []string{"Kulfi", "Gulab Jamun"}},
	}
	assert.Equal(t, want, got)
}

func TestParseBlocks_Empty(t *testing.T) {
	assert.Nil(t, ParseBlocks(""))
	assert.Nil(t, ParseBlocks(" \n\n "))
}

func TestParseBlocks_CRLFAndWhitespaceSeparators(t *testing.T) {
	got := ParseBlocks("**A**\r\n* one\r\n  \t\r\n**B**\r\n* two")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Heading)
	assert.Equal(t, []string{"two"}, got[1].Items)
}

func TestParseBlocks_HeadingOnlyBlocksDropped(t *testing.T) {
	assert.Empty(t, ParseBlocks("**A**\n\n**B**"))
}

// =============================================================================
// ToMenu Tests
// =============================================================================

func TestToMenu(t *testing.T) {
	sections := []menu.RawSection{
		{Heading: "Appetizers", Items: []string{
			"Samosa (Vegetarian): Crisp pastry\nwith potatoes.",
			"no colon",
		}},
		{Heading: "Desserts", Items: []string{"Kulfi (Vegan): Frozen milk dessert."}},
	}

	m := NewParser().ToMenu(sections)
	assert.Equal(t, []string{"Appetizers", "Desserts"}, m.Names())

	apps, _ := m.Items("Appetizers")
	require.Len(t, apps, 1)
	assert.Equal(t, "Crisp pastry with potatoes.", apps[0].Description)

	desserts, _ := m.Items("Desserts")
	require.Len(t, desserts, 1)
	assert.Equal(t, []string{"Vegetarian"}, desserts[0].Dietary)
}

func TestParseBlocks_ThenToMenu(t *testing.T) {
	p := NewParser()
	text := "**Mains**\n* Curry (Vegan): Coconut curry.\n* Naan (Vegetarian): Bread."
	fromBlocks := p.ToMenu(p.ParseBlocks(text))
	fromLines, err := p.ParseLines(text)
	require.NoError(t, err)
	assert.True(t, fromLines.Equal(fromBlocks))
}

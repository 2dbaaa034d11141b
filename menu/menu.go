package menu

// Menu is an ordered mapping from section name to its items.
// Section names are unique; sections keep the position of their first insertion.
// The zero value is not usable; create menus with New.
type Menu struct {
	order []string
	items map[string][]Item
}

// New creates an empty menu.
func New() *Menu {
	return &Menu{items: make(map[string][]Item)}
}

// AddSection adds an empty section if it does not exist yet.
// Adding an existing section is a no-op and keeps its items and position.
func (m *Menu) AddSection(name string) {
	if _, ok := m.items[name]; ok {
		return
	}
	m.order = append(m.order, name)
	m.items[name] = []Item{}
}

// AddItem appends an item to the named section, creating the section if needed.
func (m *Menu) AddItem(section string, item Item) {
	m.AddSection(section)
	m.items[section] = append(m.items[section], item)
}

// SetItems replaces the items of a section, creating the section if needed.
func (m *Menu) SetItems(section string, items []Item) {
	m.AddSection(section)
	m.items[section] = items
}

// Items returns the items of a section and whether the section exists.
func (m *Menu) Items(section string) ([]Item, bool) {
	items, ok := m.items[section]
	return items, ok
}

// Has reports whether the section exists.
func (m *Menu) Has(section string) bool {
	_, ok := m.items[section]
	return ok
}

// Names returns section names in insertion order.
func (m *Menu) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Sections returns the sections in insertion order.
// The item slices are shared with the menu.
func (m *Menu) Sections() []Section {
	sections := make([]Section, 0, len(m.order))
	for _, name := range m.order {
		sections = append(sections, Section{Name: name, Items: m.items[name]})
	}
	return sections
}

// Len returns the number of sections, including empty ones.
func (m *Menu) Len() int {
	return len(m.order)
}

// ItemCount returns the number of items across all sections.
func (m *Menu) ItemCount() int {
	n := 0
	for _, items := range m.items {
		n += len(items)
	}
	return n
}

// Equal reports whether both menus have the same sections in the same order
// with equal items.
func (m *Menu) Equal(other *Menu) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.order) != len(other.order) {
		return false
	}
	for i, name := range m.order {
		if other.order[i] != name {
			return false
		}
		a, b := m.items[name], other.items[name]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !a[j].Equal(b[j]) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (m *Menu) Clone() *Menu {
	c := New()
	for _, name := range m.order {
		items := make([]Item, len(m.items[name]))
		for i, item := range m.items[name] {
			items[i] = item.clone()
		}
		c.SetItems(name, items)
	}
	return c
}

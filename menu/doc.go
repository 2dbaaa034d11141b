// Package menu defines the structured form of a generated menu.
//
// Core types:
//   - Item: a dish with a name, a description and its dietary tags
//   - Section: a named, ordered group of items
//   - Menu: an ordered mapping from section name to items
//   - RawSection: a heading paired with undecomposed item text
//
// Menu keeps sections in the order they were first added. Its JSON and YAML
// encodings are objects whose keys follow that order:
//
//	m := menu.New()
//	m.AddItem("Appetizers", menu.Item{Name: "Hummus", Dietary: []string{"Vegan"}})
//	data, _ := json.Marshal(m)
//	// {"Appetizers":[{"name":"Hummus","description":"","dietary":["Vegan"]}]}
package menu

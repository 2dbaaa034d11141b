package menu

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema of a Menu as encoded by MarshalJSON: an
// object mapping section names to arrays of items.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	item := r.Reflect(&Item{})
	item.Version = ""
	item.Description = "A menu item with its dietary tags."

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Menu",
		Description: "Menu sections in display order, each mapping to its items.",
		Type:        "object",
		AdditionalProperties: &jsonschema.Schema{
			Type:  "array",
			Items: item,
		},
	}
}

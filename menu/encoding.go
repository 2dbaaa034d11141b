package menu

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the menu as a JSON object whose keys follow section order.
func (m *Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(encodable(m.items[name]))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the menu, keeping key order.
func (m *Menu) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("menu: expected JSON object, got %v", tok)
	}

	*m = *New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("menu: expected section name, got %v", tok)
		}
		var items []Item
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("menu: section %q: %w", name, err)
		}
		if items == nil {
			items = []Item{}
		}
		m.SetItems(name, items)
	}

	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the menu as a YAML mapping whose keys follow section order.
func (m *Menu) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range m.order {
		var val yaml.Node
		if err := val.Encode(encodable(m.items[name])); err != nil {
			return nil, fmt.Errorf("menu: section %q: %w", name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the menu, keeping key order.
func (m *Menu) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("menu: expected YAML mapping at line %d", value.Line)
	}

	*m = *New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		var items []Item
		if err := value.Content[i+1].Decode(&items); err != nil {
			return fmt.Errorf("menu: section %q: %w", name, err)
		}
		if items == nil {
			items = []Item{}
		}
		m.SetItems(name, items)
	}
	return nil
}

// encodable replaces nil tag lists so they encode as [] rather than null.
func encodable(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.Dietary == nil {
			item.Dietary = []string{}
		}
		out[i] = item
	}
	return out
}

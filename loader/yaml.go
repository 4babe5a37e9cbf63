package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"
	"go.appointy.com/typedef/schemabuilder"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes every document of data. source names data in errors.
func LoadYAML(source string, data []byte) ([]*schemabuilder.EnumTypeDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var defs []*schemabuilder.EnumTypeDef
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		if len(doc.Content) == 0 {
			continue
		}

		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s:%d: expected a mapping", source, root.Line)
		}

		fields := make([]field, 0, len(root.Content)/2)
		seen := make(map[string]bool, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], root.Content[i+1]
			if seen[k.Value] {
				return nil, fmt.Errorf("%s:%d: duplicate key %q", source, k.Line, k.Value)
			}
			seen[k.Value] = true
			value, err := nodeValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", source, v.Line, err)
			}
			fields = append(fields, field{key: k.Value, value: value, pos: fmt.Sprintf(":%d", k.Line)})
		}

		def, err := buildDefinition(source, fields)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// nodeValue converts a node into plain Go values, with mappings as
// *orderedmap.OrderedMap so that key order survives.
func nodeValue(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := orderedmap.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if _, ok := m.Get(k.Value); ok {
				return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
			}
			value, err := nodeValue(v)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			value, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	default:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancoleman/orderedmap"
	"go.appointy.com/typedef/schemabuilder"
)

// LoadJSON decodes a single definition object or an array of them.
func LoadJSON(source string, data []byte) ([]*schemabuilder.EnumTypeDef, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var raws []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
	} else {
		raws = []json.RawMessage{trimmed}
	}

	defs := make([]*schemabuilder.EnumTypeDef, 0, len(raws))
	for i, raw := range raws {
		if err := checkDuplicateKeys(raw); err != nil {
			return nil, fmt.Errorf("%s: definition %d: %w", source, i, err)
		}
		doc := orderedmap.New()
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("%s: definition %d: %w", source, i, err)
		}

		pos := fmt.Sprintf("[%d]", i)
		fields := make([]field, 0, len(doc.Keys()))
		for _, k := range doc.Keys() {
			v, _ := doc.Get(k)
			fields = append(fields, field{key: k, value: jsonValue(v), pos: pos})
		}

		def, err := buildDefinition(source, fields)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// checkDuplicateKeys fails on any object of data that repeats a key.
// orderedmap keeps the last value of a repeated key without complaint.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return walkJSON(dec)
}

func walkJSON(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := make(map[string]bool)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := tok.(string)
			if !ok {
				return fmt.Errorf("unexpected object key %v", tok)
			}
			if seen[key] {
				return fmt.Errorf("duplicate key %q", key)
			}
			seen[key] = true
			if err := walkJSON(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := walkJSON(dec); err != nil {
				return err
			}
		}
	}

	// closing delimiter
	_, err = dec.Token()
	return err
}

// jsonValue rewrites decoded JSON so nested objects are *orderedmap.OrderedMap
// and whole numbers are ints, matching what the YAML decoder produces.
func jsonValue(v interface{}) interface{} {
	switch t := v.(type) {
	case orderedmap.OrderedMap:
		return jsonValue(&t)
	case *orderedmap.OrderedMap:
		m := orderedmap.New()
		for _, k := range t.Keys() {
			inner, _ := t.Get(k)
			m.Set(k, jsonValue(inner))
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, inner := range t {
			m[k] = jsonValue(inner)
		}
		return m
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, inner := range t {
			out[i] = jsonValue(inner)
		}
		return out
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int(t)
		}
		return t
	}
	return v
}

// plainMap flattens an object value for the opaque extensions field.
func plainMap(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case map[string]interface{}:
		return t, true
	case *orderedmap.OrderedMap:
		out := make(map[string]interface{}, len(t.Keys()))
		for _, k := range t.Keys() {
			inner, _ := t.Get(k)
			if nested, ok := inner.(*orderedmap.OrderedMap); ok {
				inner, _ = plainMap(nested)
			}
			out[k] = inner
		}
		return out, true
	}
	return nil, false
}

// Package loader reads enum type definitions from YAML and JSON documents.
//
// A document declares one enum:
//
//	name: Priority
//	description: How urgent a task is.
//	rootTyping: go.appointy.com/tasks.Priority
//	extensions:
//	  owner: tasks
//	members:
//	  LOW: 1
//	  MEDIUM: 2
//	  HIGH: 3
//
// members is a sequence of names or member records (name, value,
// description, deprecation, extensions), a mapping of names to values, or a
// reverse mapping as produced by generated enum code. Key order is kept.
// YAML files may hold several documents separated by "---"; JSON files hold
// one object or an array of objects.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.appointy.com/typedef/schemabuilder"
)

// Document keys.
const (
	keyName        = "name"
	keyDescription = "description"
	keyRootTyping  = "rootTyping"
	keyExtensions  = "extensions"
	keyMembers     = "members"
)

// Load decodes data according to the extension of name.
func Load(name string, data []byte) ([]*schemabuilder.EnumTypeDef, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return LoadYAML(name, data)
	case ".json":
		return LoadJSON(name, data)
	default:
		return nil, fmt.Errorf("%s: unsupported definition file type", name)
	}
}

// LoadFile reads and decodes the file at path.
func LoadFile(path string) ([]*schemabuilder.EnumTypeDef, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	return Load(path, data)
}

// IsDefinitionFile reports whether name has an extension Load understands.
func IsDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Definitions converts loaded enums for schemabuilder.Schema.Register.
func Definitions(defs []*schemabuilder.EnumTypeDef) []schemabuilder.Definition {
	out := make([]schemabuilder.Definition, len(defs))
	for i, d := range defs {
		out[i] = d
	}
	return out
}

// field is one top-level key of a document.
type field struct {
	key   string
	value interface{}
	pos   string
}

// buildDefinition turns the top-level fields of one document into an enum
// definition. Members are sniffed with schemabuilder.MembersOf and only
// validated when the schema is built.
func buildDefinition(source string, fields []field) (*schemabuilder.EnumTypeDef, error) {
	var config schemabuilder.EnumTypeConfig
	for _, f := range fields {
		switch f.key {
		case keyName:
			s, ok := f.value.(string)
			if !ok {
				return nil, fmt.Errorf("%s%s: name must be a string", source, f.pos)
			}
			config.Name = s
		case keyDescription:
			s, ok := f.value.(string)
			if !ok && f.value != nil {
				return nil, fmt.Errorf("%s%s: description must be a string", source, f.pos)
			}
			config.Description = s
		case keyRootTyping:
			s, ok := f.value.(string)
			if !ok && f.value != nil {
				return nil, fmt.Errorf("%s%s: rootTyping must be a string", source, f.pos)
			}
			config.RootTyping = s
		case keyExtensions:
			ext, ok := plainMap(f.value)
			if !ok {
				return nil, fmt.Errorf("%s%s: extensions must be an object", source, f.pos)
			}
			config.Extensions = ext
		case keyMembers:
			config.Members = schemabuilder.MembersOf(f.value)
		default:
			return nil, fmt.Errorf("%s%s: unknown key %q", source, f.pos, f.key)
		}
	}
	def, err := schemabuilder.EnumType(config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return def, nil
}

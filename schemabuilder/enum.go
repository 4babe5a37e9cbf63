package schemabuilder

// EnumTypeDef is a declared enum type. It holds the configuration as given;
// members are normalized when the schema is built.
type EnumTypeDef struct {
	name   string
	config EnumTypeConfig
}

// EnumType declares an enum type named config.Name. It fails with a
// *jerrors.InvalidNameError when the name is not a valid GraphQL name.
func EnumType(config EnumTypeConfig) (*EnumTypeDef, error) {
	return NewEnumTypeDef(config.Name, config)
}

// MustEnumType is EnumType for package level declarations; it panics on error.
func MustEnumType(config EnumTypeConfig) *EnumTypeDef {
	def, err := EnumType(config)
	if err != nil {
		panic(err)
	}
	return def
}

// NewEnumTypeDef declares an enum type under name with the given configuration.
func NewEnumTypeDef(name string, config EnumTypeConfig) (*EnumTypeDef, error) {
	if err := AssertValidName(name); err != nil {
		return nil, err
	}
	return &EnumTypeDef{name: name, config: config}, nil
}

// Name returns the type name.
func (d *EnumTypeDef) Name() string {
	return d.name
}

// Value returns the configuration the definition was created with.
func (d *EnumTypeDef) Value() EnumTypeConfig {
	return d.config
}

// Members normalizes the member declaration, see NormalizeMembers.
func (d *EnumTypeDef) Members() ([]EnumMemberInfo, error) {
	return NormalizeMembers(d.name, d.config.Members)
}

func (d *EnumTypeDef) Kind() Kind { return KindEnum }

func (d *EnumTypeDef) TypeName() string { return d.name }

func (d *EnumTypeDef) isDefinition() {}

var _ Definition = &EnumTypeDef{}

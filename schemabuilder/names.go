package schemabuilder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"go.appointy.com/typedef/jerrors"
)

var nameRegExp = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// AssertValidName checks name against the GraphQL name grammar. Names starting
// with "__" are reserved for introspection.
func AssertValidName(name string) error {
	switch {
	case name == "":
		return &jerrors.InvalidNameError{Name: name, Reason: "name must not be empty"}
	case strings.HasPrefix(name, "__"):
		return &jerrors.InvalidNameError{Name: name, Reason: `names starting with "__" are reserved`}
	case !nameRegExp.MatchString(name):
		return &jerrors.InvalidNameError{Name: name}
	}
	return nil
}

// assertValidMemberName applies AssertValidName plus the rule that an enum
// value can not be spelled like a boolean or null literal.
func assertValidMemberName(name string) error {
	if err := AssertValidName(name); err != nil {
		return err
	}
	switch name {
	case "true", "false", "null":
		return &jerrors.InvalidNameError{Name: name, Reason: "enum values can not be true, false or null"}
	}
	return nil
}

// makeMemberName converts a Go identifier or display string such as
// "InProgress" or "in progress" into the conventional enum value spelling
// "IN_PROGRESS".
func makeMemberName(s string) string {
	return strcase.ToScreamingSnake(strings.TrimSpace(s))
}

// stringerName derives a member name from a fmt.Stringer entry.
func stringerName(s fmt.Stringer) string {
	return makeMemberName(s.String())
}

package schemabuilder

import (
	"errors"

	"go.appointy.com/typedef/jerrors"
)

// NormalizeMembers turns the member declaration of the enum typeName into the
// ordered list of members. It fails with a *jerrors.ConfigurationError when
// the declaration is missing, empty, of an unrecognized shape, or yields an
// invalid or duplicate member name.
func NormalizeMembers(typeName string, m Members) ([]EnumMemberInfo, error) {
	if m == nil {
		return nil, &jerrors.ConfigurationError{TypeName: typeName, Reason: "members are required"}
	}

	infos, err := m.members()
	if err != nil {
		cfgErr := &jerrors.ConfigurationError{TypeName: typeName, Reason: err.Error()}
		var me *memberError
		if errors.As(err, &me) {
			cfgErr.Member, cfgErr.Reason, cfgErr.Cause = me.member, me.reason, me.cause
		}
		return nil, cfgErr
	}
	if len(infos) == 0 {
		return nil, &jerrors.ConfigurationError{TypeName: typeName, Reason: "must have at least one member"}
	}

	seen := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		if err := assertValidMemberName(info.Name); err != nil {
			return nil, &jerrors.ConfigurationError{TypeName: typeName, Member: info.Name, Reason: "invalid member name", Cause: err}
		}
		if _, ok := seen[info.Name]; ok {
			return nil, &jerrors.ConfigurationError{TypeName: typeName, Member: info.Name, Reason: "duplicate member name"}
		}
		seen[info.Name] = struct{}{}
	}

	return infos, nil
}

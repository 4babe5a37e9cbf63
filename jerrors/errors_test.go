package jerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.appointy.com/typedef/jerrors"
)

func TestConvertError(t *testing.T) {
	nameErr := &jerrors.InvalidNameError{Name: "1abc"}
	cfgErr := &jerrors.ConfigurationError{TypeName: "Color", Member: "1abc", Reason: "invalid member name", Cause: nameErr}

	cases := []struct {
		name string
		err  error
		code string
	}{
		{"invalid name", nameErr, jerrors.CodeInvalidName},
		{"configuration wraps name", cfgErr, jerrors.CodeConfiguration},
		{"wrapped configuration", fmt.Errorf("building schema: %w", cfgErr), jerrors.CodeConfiguration},
		{"plain", errors.New("boom"), jerrors.CodeUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			converted := jerrors.ConvertError(c.err)
			require.Equal(t, c.code, converted.Extensions.Code)
			require.Equal(t, c.err.Error(), converted.Message)
			require.NotNil(t, converted.Paths)
		})
	}
}

func TestConvertErrorKeepsError(t *testing.T) {
	e := jerrors.New("Custom", "custom failure", "a", "b")
	require.Same(t, e, jerrors.ConvertError(fmt.Errorf("wrapped: %w", e)))
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &jerrors.ConfigurationError{TypeName: "Priority", Member: "LOW", Reason: "duplicate member name"}
	require.Equal(t, `enum Priority: member "LOW": duplicate member name`, err.Error())

	err = &jerrors.ConfigurationError{TypeName: "Priority", Reason: "must have at least one member"}
	require.Equal(t, "enum Priority: must have at least one member", err.Error())

	cause := &jerrors.InvalidNameError{Name: "__x", Reason: "names starting with \"__\" are reserved"}
	err = &jerrors.ConfigurationError{TypeName: "Priority", Member: "__x", Reason: "invalid member name", Cause: cause}
	var nameErr *jerrors.InvalidNameError
	require.True(t, errors.As(err, &nameErr))
	require.Equal(t, "__x", nameErr.Name)
}

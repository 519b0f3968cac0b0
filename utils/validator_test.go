package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type booking struct {
	CheckIn string `validate:"ddmmyyyy"`
	Mode    string `validate:"omitempty,booking-mode"`
}

func TestValidate_CustomTags(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(booking{CheckIn: "01-02-2025", Mode: "offline"}))
	require.NoError(t, Validate.Struct(booking{CheckIn: "2025-02-01"}))
	require.Error(t, Validate.Struct(booking{CheckIn: "02/01/2025"}))
	require.Error(t, Validate.Struct(booking{CheckIn: "01-02-2025", Mode: "phone"}))
}

package eligibility_test

import (
	"testing"

	"preparedelivery/internal/core/domain/model/eligibility"
	"preparedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReason_String(t *testing.T) {
	tests := []struct {
		reason eligibility.Reason
		want   string
	}{
		{reason: eligibility.Unknown, want: "Unknown"},
		{reason: eligibility.DateInPast, want: "DateInPast"},
		{reason: eligibility.IncompleteAddress, want: "IncompleteAddress"},
		{reason: eligibility.NoVehicleAvailable, want: "NoVehicleAvailable"},
		{reason: eligibility.Reason(42), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reason.String())
		})
	}
}

func TestReason_Validate(t *testing.T) {
	for _, r := range []eligibility.Reason{
		eligibility.DateInPast,
		eligibility.IncompleteAddress,
		eligibility.NoVehicleAvailable,
	} {
		require.NoError(t, r.Validate(), r.String())
	}

	for _, r := range []eligibility.Reason{eligibility.Unknown, eligibility.Reason(-1), eligibility.Reason(4)} {
		err := r.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not a valid rejection reason")
	}
}

func TestReason_Err(t *testing.T) {
	assert.Equal(t, eligibility.ErrDateInPast, eligibility.DateInPast.Err())
	assert.Equal(t, eligibility.ErrIncompleteAddress, eligibility.IncompleteAddress.Err())
	assert.Equal(t, eligibility.ErrNoVehicleAvailable, eligibility.NoVehicleAvailable.Err())
	require.NoError(t, eligibility.Unknown.Err())
}

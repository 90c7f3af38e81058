package billing

import (
	"testing"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterReading(t *testing.T) {
	unitID := uuid.New()
	month := BillingMonth{2025, time.January}

	r, err := NewMeterReading(testTenantID, unitID, UtilityWater, month, dec("1200"), dec("1206"))
	require.NoError(t, err)
	assert.True(t, r.Consumption().Equal(dec("6")))

	t.Run("rollover is flagged", func(t *testing.T) {
		_, err := NewMeterReading(testTenantID, unitID, UtilityElectric, month, dec("9990"), dec("15"))
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "rollover")
	})

	t.Run("unknown utility", func(t *testing.T) {
		_, err := NewMeterReading(testTenantID, unitID, UtilityType("GAS"), month, dec("1"), dec("2"))
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := NewMeterReading(testTenantID, uuid.Nil, UtilityWater, month, dec("1"), dec("2"))
		assert.True(t, shared.IsValidationError(err))
	})
}

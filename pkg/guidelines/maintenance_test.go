package guidelines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSpousalMaintenance(t *testing.T) {
	t.Run("should apply the statutory formula with the 40 percent cap", func(t *testing.T) {
		result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
			PayerGrossIncome: 60000,
			PayeeGrossIncome: 20000,
			MarriageYears:    10,
		})

		// formula gives 14998 but the payee may not exceed 40% of combined
		assert.Equal(t, 80000.0, result.CombinedGrossIncome)
		assert.Equal(t, 12000.0, result.GuidelineAmount)
		assert.Equal(t, 1000.0, result.MonthlyAmount)
		assert.Equal(t, 84, result.GuidelineDuration)
		assert.Empty(t, result.Note)
	})

	t.Run("should return the formula amount when under the cap", func(t *testing.T) {
		result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
			PayerGrossIncome: 50000,
			PayeeGrossIncome: 40000,
			MarriageYears:    4,
		})

		// 50000*0.3333 - 40000*0.25 = 6665, cap is 90000*0.4 - 40000 = -4000
		assert.Equal(t, 0.0, result.GuidelineAmount)
		assert.Equal(t, 48, result.GuidelineDuration)
	})

	t.Run("should floor a negative award at zero", func(t *testing.T) {
		result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
			PayerGrossIncome: 20000,
			PayeeGrossIncome: 30000,
			MarriageYears:    6,
		})

		assert.Equal(t, 0.0, result.GuidelineAmount)
		assert.Equal(t, 0.0, result.MonthlyAmount)
	})

	t.Run("should defer to the court above the combined income cap", func(t *testing.T) {
		result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
			PayerGrossIncome: 400000,
			PayeeGrossIncome: 150000,
			MarriageYears:    12,
		})

		assert.Equal(t, 0.0, result.GuidelineAmount)
		assert.Equal(t, 0, result.GuidelineDuration)
		assert.Contains(t, result.Note, "exceeds $500,000")
	})

	t.Run("should step duration by marriage length", func(t *testing.T) {
		tests := []struct {
			years    float64
			expected int
		}{
			{3, 36},
			{7, 50},
			{12, 101},
			{18, 173},
		}

		for _, tt := range tests {
			result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
				PayerGrossIncome: 60000,
				PayeeGrossIncome: 20000,
				MarriageYears:    tt.years,
			})
			assert.Equal(t, tt.expected, result.GuidelineDuration, "years: %v", tt.years)
		}
	})

	t.Run("should note an indefinite term at twenty years", func(t *testing.T) {
		result := CalculateSpousalMaintenance(SpousalMaintenanceInput{
			PayerGrossIncome: 60000,
			PayeeGrossIncome: 20000,
			MarriageYears:    22,
		})

		assert.Equal(t, 264, result.GuidelineDuration)
		assert.Contains(t, result.Note, "indefinite")
	})
}

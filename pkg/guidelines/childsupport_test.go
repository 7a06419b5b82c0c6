package guidelines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateChildSupport(t *testing.T) {
	t.Run("should apply income shares for two children with equal parenting time", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     2,
			Parent1NetIncome:     4000,
			Parent2NetIncome:     2000,
			ParentingTimeParent1: 50,
			ParentingTimeParent2: 50,
		})

		assert.Equal(t, 6000.0, result.CombinedNetIncome)
		assert.Equal(t, 0.28, result.BasePercentage)
		assert.Equal(t, 1680.0, result.BasicObligation)
		assert.Equal(t, 0.0, result.SharedParentingAdjustment)
		assert.Equal(t, 1680.0, result.TotalObligation)

		// equal time, parent 1 earns more, so parent 1 pays
		assert.Equal(t, 560.0, result.Parent1Owes)
		assert.Equal(t, 0.0, result.Parent2Owes)
	})

	t.Run("should charge income above the ceiling at the marginal rate", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     1,
			Parent1NetIncome:     10000,
			Parent2NetIncome:     5000,
			ParentingTimeParent1: 100,
			ParentingTimeParent2: 0,
		})

		// 12000 * 0.20 + 3000 * 0.10
		assert.Equal(t, 2700.0, result.BasicObligation)
	})

	t.Run("should cap the percentage at the six child bracket", func(t *testing.T) {
		six := CalculateChildSupport(ChildSupportInput{NumberOfChildren: 6, Parent1NetIncome: 3000, Parent2NetIncome: 3000})
		nine := CalculateChildSupport(ChildSupportInput{NumberOfChildren: 9, Parent1NetIncome: 3000, Parent2NetIncome: 3000})

		assert.Equal(t, 0.50, six.BasePercentage)
		assert.Equal(t, 0.50, nine.BasePercentage)
	})

	t.Run("should apply the shared parenting adjustment when both parents exceed the floor", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     2,
			Parent1NetIncome:     4000,
			Parent2NetIncome:     2000,
			ParentingTimeParent1: 70,
			ParentingTimeParent2: 30,
		})

		// 1680 * (40 / 100) * 0.5
		assert.Equal(t, 336.0, result.SharedParentingAdjustment)
		assert.Equal(t, 2016.0, result.TotalObligation)

		// parent 2 has less parenting time, so parent 2 pays
		assert.Equal(t, 0.0, result.Parent1Owes)
		assert.Equal(t, 672.0, result.Parent2Owes)
	})

	t.Run("should skip the adjustment when one parent is under the floor", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     1,
			Parent1NetIncome:     4000,
			Parent2NetIncome:     2000,
			ParentingTimeParent1: 90,
			ParentingTimeParent2: 10,
		})

		assert.Equal(t, 0.0, result.SharedParentingAdjustment)
	})

	t.Run("should apportion extra costs by income share", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     2,
			Parent1NetIncome:     4000,
			Parent2NetIncome:     2000,
			ParentingTimeParent1: 50,
			ParentingTimeParent2: 50,
			HealthInsuranceCost:  300,
		})

		assert.Equal(t, 200.0, result.ExtraCosts)
		assert.Equal(t, 1880.0, result.TotalObligation)
	})

	t.Run("should owe nothing with equal time and equal income", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{
			NumberOfChildren:     1,
			Parent1NetIncome:     3000,
			Parent2NetIncome:     3000,
			ParentingTimeParent1: 50,
			ParentingTimeParent2: 50,
		})

		assert.Equal(t, 0.0, result.Parent1Owes)
		assert.Equal(t, 0.0, result.Parent2Owes)
	})

	t.Run("total obligation should never fall below the basic obligation", func(t *testing.T) {
		inputs := []ChildSupportInput{
			{NumberOfChildren: 1, Parent1NetIncome: 2500, Parent2NetIncome: 1500, ParentingTimeParent1: 60, ParentingTimeParent2: 40},
			{NumberOfChildren: 3, Parent1NetIncome: 8000, Parent2NetIncome: 6000, ParentingTimeParent1: 50, ParentingTimeParent2: 50, ChildcareCost: 900},
			{NumberOfChildren: 5, Parent1NetIncome: 1200, Parent2NetIncome: 800, ParentingTimeParent1: 80, ParentingTimeParent2: 20},
		}

		for _, input := range inputs {
			result := CalculateChildSupport(input)
			assert.GreaterOrEqual(t, result.TotalObligation, result.BasicObligation)
		}
	})

	t.Run("should handle zero combined income", func(t *testing.T) {
		result := CalculateChildSupport(ChildSupportInput{NumberOfChildren: 2})

		assert.Equal(t, 0.0, result.BasicObligation)
		assert.Equal(t, 0.0, result.Parent1Owes)
		assert.Equal(t, 0.0, result.Parent2Owes)
	})
}

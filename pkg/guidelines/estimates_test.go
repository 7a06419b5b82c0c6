package guidelines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCostTimeline(t *testing.T) {
	t.Run("should charge cook county fees and backlog", func(t *testing.T) {
		result := EstimateCostTimeline(CostTimelineInput{
			County:           "Cook",
			FullAgreement:    true,
			NeedsService:     true,
			SpouseCooperates: true,
		})

		assert.Equal(t, 388.0, result.FilingFee)
		assert.Equal(t, 60.0, result.ServiceFee)
		assert.Equal(t, 798.0, result.TotalCost)
		assert.Equal(t, 10, result.MinWeeks)
		assert.Equal(t, 14, result.MaxWeeks)
		assert.Empty(t, result.Note)
	})

	t.Run("should charge collar county fees", func(t *testing.T) {
		result := EstimateCostTimeline(CostTimelineInput{
			County:           "DuPage",
			FullAgreement:    true,
			SpouseCooperates: true,
		})

		assert.Equal(t, 337.0, result.FilingFee)
		assert.Equal(t, 0.0, result.ServiceFee)
		assert.Equal(t, 687.0, result.TotalCost)
		assert.Equal(t, 8, result.MinWeeks)
		assert.Equal(t, 12, result.MaxWeeks)
	})

	t.Run("should waive the service fee with a waiver of service", func(t *testing.T) {
		result := EstimateCostTimeline(CostTimelineInput{
			County:           "Cook",
			FullAgreement:    true,
			NeedsService:     true,
			WaiverOfService:  true,
			SpouseCooperates: true,
		})

		assert.Equal(t, 0.0, result.ServiceFee)
	})

	t.Run("should extend the timeline for children, disagreement, and a non-cooperating spouse", func(t *testing.T) {
		result := EstimateCostTimeline(CostTimelineInput{
			County:      "Sangamon",
			HasChildren: true,
		})

		assert.Equal(t, 289.0, result.FilingFee)
		assert.Equal(t, 639.0, result.TotalCost)
		assert.Equal(t, 12, result.MinWeeks)
		assert.Equal(t, 32, result.MaxWeeks)
		assert.Contains(t, result.Note, "non-cooperating")
	})
}

package guidelines

import "math"

// incomeCeiling is the combined monthly net income above which the excess is
// charged at a flat marginal rate instead of the bracket percentage.
const incomeCeiling = 12000.0

// marginalRate applies to combined net income above the ceiling.
const marginalRate = 0.10

// sharedParentingFloor is the minimum parenting-time share both parents must
// have before the shared-parenting adjustment applies.
const sharedParentingFloor = 20.0

// basePercentages keys the basic obligation percentage by number of children.
// Six or more children always maps to the top bracket.
var basePercentages = map[int]float64{
	1: 0.20,
	2: 0.28,
	3: 0.32,
	4: 0.40,
	5: 0.45,
	6: 0.50,
}

type ChildSupportInput struct {
	NumberOfChildren         int     `json:"number_of_children" validate:"required,min=1"`
	Parent1NetIncome         float64 `json:"parent1_net_income" validate:"gte=0"`
	Parent2NetIncome         float64 `json:"parent2_net_income" validate:"gte=0"`
	ParentingTimeParent1     float64 `json:"parenting_time_parent1" validate:"gte=0,lte=100"`
	ParentingTimeParent2     float64 `json:"parenting_time_parent2" validate:"gte=0,lte=100"`
	HealthInsuranceCost      float64 `json:"health_insurance_cost" validate:"gte=0"`
	ChildcareCost            float64 `json:"childcare_cost" validate:"gte=0"`
	EducationCost            float64 `json:"education_cost" validate:"gte=0"`
	ExtraordinaryMedicalCost float64 `json:"extraordinary_medical_cost" validate:"gte=0"`
}

type ChildSupportCalculation struct {
	CombinedNetIncome         float64 `json:"combined_net_income"`
	BasePercentage            float64 `json:"base_percentage"`
	BasicObligation           float64 `json:"basic_obligation"`
	SharedParentingAdjustment float64 `json:"shared_parenting_adjustment"`
	ExtraCosts                float64 `json:"extra_costs"`
	Parent1Share              float64 `json:"parent1_share"`
	Parent2Share              float64 `json:"parent2_share"`
	TotalObligation           float64 `json:"total_obligation"`
	Parent1Owes               float64 `json:"parent1_owes"`
	Parent2Owes               float64 `json:"parent2_owes"`
}

// CalculateChildSupport applies the income-shares guideline formula.
func CalculateChildSupport(input ChildSupportInput) ChildSupportCalculation {
	combined := input.Parent1NetIncome + input.Parent2NetIncome
	percentage := basePercentage(input.NumberOfChildren)

	var basic float64
	if combined > incomeCeiling {
		// excess over the guideline ceiling is charged at a flat marginal rate
		basic = incomeCeiling*percentage + (combined-incomeCeiling)*marginalRate
	} else {
		basic = combined * percentage
	}
	basic = Round2(basic)

	// shared-parenting adjustment only applies when both parents keep the
	// children at least 20% of the time
	adjustment := 0.0
	if input.ParentingTimeParent1 >= sharedParentingFloor && input.ParentingTimeParent2 >= sharedParentingFloor {
		timeDifference := math.Abs(input.ParentingTimeParent1 - input.ParentingTimeParent2)
		adjustment = Round2(basic * (timeDifference / 100) * 0.5)
	}

	parent1Share := 0.0
	parent2Share := 0.0
	if combined > 0 {
		parent1Share = input.Parent1NetIncome / combined
		parent2Share = input.Parent2NetIncome / combined
	}

	// extra costs are apportioned to parent1 by income share
	extras := input.HealthInsuranceCost + input.ChildcareCost + input.EducationCost + input.ExtraordinaryMedicalCost
	parent1Extras := Round2(extras * parent1Share)

	total := Round2(basic + adjustment + parent1Extras)

	parent1Owes, parent2Owes := transferDirection(input, total, parent1Share, parent2Share)

	return ChildSupportCalculation{
		CombinedNetIncome:         Round2(combined),
		BasePercentage:            percentage,
		BasicObligation:           basic,
		SharedParentingAdjustment: adjustment,
		ExtraCosts:                parent1Extras,
		Parent1Share:              Round2(parent1Share),
		Parent2Share:              Round2(parent2Share),
		TotalObligation:           total,
		Parent1Owes:               parent1Owes,
		Parent2Owes:               parent2Owes,
	}
}

func basePercentage(children int) float64 {
	if children >= 6 {
		return basePercentages[6]
	}
	if pct, ok := basePercentages[children]; ok {
		return pct
	}
	return 0
}

// transferDirection resolves who owes whom. The parent with less parenting
// time owes the net difference; with equal time the higher earner owes it;
// with equal time and equal income nothing is owed.
func transferDirection(input ChildSupportInput, total, parent1Share, parent2Share float64) (parent1Owes, parent2Owes float64) {
	netDifference := Round2(math.Abs(total*parent1Share - total*parent2Share))

	switch {
	case input.ParentingTimeParent1 < input.ParentingTimeParent2:
		return netDifference, 0
	case input.ParentingTimeParent2 < input.ParentingTimeParent1:
		return 0, netDifference
	case input.Parent1NetIncome > input.Parent2NetIncome:
		return netDifference, 0
	case input.Parent2NetIncome > input.Parent1NetIncome:
		return 0, netDifference
	default:
		return 0, 0
	}
}

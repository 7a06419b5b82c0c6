package guidelines

import "strings"

// County tiers drive filing fees and court backlog. Cook County is its own
// tier; the collar counties share a second; everything else is downstate.
var collarCounties = map[string]bool{
	"dupage":  true,
	"kane":    true,
	"kendall": true,
	"lake":    true,
	"mchenry": true,
	"will":    true,
}

const (
	filingFeeCook     = 388.0
	filingFeeCollar   = 337.0
	filingFeeDefault  = 289.0
	appearanceFee     = 251.0
	serviceFeeSheriff = 60.0
	preparationFee    = 99.0
)

type CostTimelineInput struct {
	County           string `json:"county"`
	HasChildren      bool   `json:"has_children"`
	FullAgreement    bool   `json:"full_agreement"`
	NeedsService     bool   `json:"needs_service"`
	WaiverOfService  bool   `json:"waiver_of_service"`
	SpouseCooperates bool   `json:"spouse_cooperates"`
}

type CostTimelineEstimate struct {
	FilingFee      float64 `json:"filing_fee"`
	AppearanceFee  float64 `json:"appearance_fee"`
	ServiceFee     float64 `json:"service_fee"`
	PreparationFee float64 `json:"preparation_fee"`
	TotalCost      float64 `json:"total_cost"`
	MinWeeks       int     `json:"min_weeks"`
	MaxWeeks       int     `json:"max_weeks"`
	Note           string  `json:"note,omitempty"`
}

// EstimateCostTimeline produces the cost and timeline figures shown before a
// user commits to the process. Table-driven and deterministic.
func EstimateCostTimeline(input CostTimelineInput) CostTimelineEstimate {
	county := strings.ToLower(strings.TrimSpace(input.County))

	filingFee := filingFeeDefault
	backlogWeeks := 0
	switch {
	case county == "cook":
		filingFee = filingFeeCook
		backlogWeeks = 4
	case collarCounties[county]:
		filingFee = filingFeeCollar
		backlogWeeks = 2
	}

	serviceFee := 0.0
	if input.NeedsService && !input.WaiverOfService {
		serviceFee = serviceFeeSheriff
	}

	minWeeks := 6 + backlogWeeks
	maxWeeks := 10 + backlogWeeks
	if input.HasChildren {
		// parenting class and plan approval add time
		minWeeks += 4
		maxWeeks += 6
	}
	if !input.FullAgreement {
		minWeeks += 2
		maxWeeks += 8
	}

	note := ""
	if !input.SpouseCooperates {
		note = "Timeline assumes the respondent signs the entry of appearance; a non-cooperating spouse can extend it significantly."
		maxWeeks += 8
	}

	total := Round2(filingFee + appearanceFee + serviceFee + preparationFee)

	return CostTimelineEstimate{
		FilingFee:      filingFee,
		AppearanceFee:  appearanceFee,
		ServiceFee:     serviceFee,
		PreparationFee: preparationFee,
		TotalCost:      total,
		MinWeeks:       minWeeks,
		MaxWeeks:       maxWeeks,
		Note:           note,
	}
}

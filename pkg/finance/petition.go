package finance

import (
	"github.com/Ramsey-B/fern/pkg/responses"
)

// PetitionFromResponses builds the petition field set from raw answers.
// Everything is optional; the renderer substitutes placeholders for blanks.
func PetitionFromResponses(raw responses.Responses) PetitionData {
	r := responses.NewResolver(raw)

	hasChildren := r.Bool("has-minor-children", "has-children")
	numberOfChildren := r.Int("number-of-children")
	if numberOfChildren > 0 {
		hasChildren = true
	}

	return PetitionData{
		PetitionerName:    r.String("petitioner-name", "your-full-name"),
		PetitionerAddress: r.String("petitioner-address", "your-address"),
		RespondentName:    r.String("respondent-name", "spouse-full-name"),
		RespondentAddress: r.String("respondent-address", "spouse-address"),
		County:            r.String("county", "filing-county"),
		CaseNumber:        r.String("case-number"),
		MarriageDate:      r.String("marriage-date", "date-of-marriage"),
		MarriagePlace:     r.String("marriage-place", "place-of-marriage"),
		SeparationDate:    r.String("separation-date", "date-of-separation"),
		Grounds:           r.String("grounds-type", "divorce-grounds"),
		HasChildren:       hasChildren,
		NumberOfChildren:  numberOfChildren,
		ResidencyMonths:   r.Int("residency-months", "illinois-residency-months"),
		SeparationMonths:  r.Int("separation-months"),
	}
}

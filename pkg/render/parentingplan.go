package render

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/responses"
)

// RenderParentingPlan produces the allocation-of-parental-responsibilities
// plan. Child details come straight from the raw answers; any missing field
// renders as a placeholder.
func RenderParentingPlan(data CaseData, meta Metadata) ([]byte, error) {
	c := NewCanvas(meta.GeneratedAt)
	p := data.Petition
	r := responses.NewResolver(data.Raw)

	writeCaption(c, p)

	c.CenteredTitle("PARENTING PLAN")
	c.Spacer(lineHeight)

	c.Paragraph(fmt.Sprintf("This Parenting Plan is entered into between %s (\"Petitioner\") and %s (\"Respondent\") concerning the minor child(ren) of the parties.",
		OrPlaceholder(p.PetitionerName), OrPlaceholder(p.RespondentName)))
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 4*lineHeight)
	c.SectionHeader("MINOR CHILDREN")
	writeChildren(c, r, p.NumberOfChildren)

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("ALLOCATION OF DECISION-MAKING RESPONSIBILITIES")
	decisionAreas := []struct {
		label string
		key   string
	}{
		{"Education", "decision-education"},
		{"Health Care", "decision-health-care"},
		{"Religion", "decision-religion"},
		{"Extracurricular Activities", "decision-extracurricular"},
	}
	for _, area := range decisionAreas {
		holder := r.String(area.key, "decision-making")
		if holder == "" {
			holder = "Joint"
		}
		c.EnsureSpace(lineHeight)
		c.KeyValue(area.label+":", holder)
	}
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 4*lineHeight)
	c.SectionHeader("PARENTING TIME SCHEDULE")
	schedule := r.String("parenting-schedule", "parenting-time-schedule")
	if schedule != "" {
		c.Paragraph(schedule)
	} else {
		c.Paragraph("The children shall reside primarily with " + OrPlaceholder(r.String("primary-residence-parent")) + ". The other parent shall have parenting time on alternating weekends from Friday evening to Sunday evening and one weekday evening each week, together with holiday and vacation time as the parties agree.")
	}
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("TRANSPORTATION AND EXCHANGES")
	c.Paragraph("Unless otherwise agreed, the parent beginning their parenting time shall provide transportation. Exchanges shall occur at the children's residence or another agreed location.")

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("COMMUNICATION")
	c.Paragraph("Each parent may communicate with the children by telephone or video call at reasonable times during the other parent's parenting time. Neither parent shall interfere with such communication.")

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("RELOCATION")
	c.Paragraph("Neither parent shall relocate with the children except in compliance with Illinois law, including written notice to the other parent at least 60 days before any intended relocation.")

	c.EnsureSpace(6 * lineHeight)
	c.Spacer(lineHeight)
	c.SignatureLine(fmt.Sprintf("%s, Petitioner", OrPlaceholder(p.PetitionerName)))
	c.Spacer(lineHeight / 2)
	c.SignatureLine(fmt.Sprintf("%s, Respondent", OrPlaceholder(p.RespondentName)))

	writeFooter(c, meta)

	return c.Output()
}

func writeChildren(c *Canvas, r *responses.Resolver, count int) {
	ordinals := []string{"one", "two", "three", "four", "five", "six"}

	if count <= 0 {
		count = 1
	}
	if count > len(ordinals) {
		count = len(ordinals)
	}

	for i := 0; i < count; i++ {
		name := r.String(fmt.Sprintf("child-%s-name", ordinals[i]))
		birthDate := r.String(fmt.Sprintf("child-%s-birth-date", ordinals[i]))
		c.EnsureSpace(lineHeight)
		c.KeyValue(fmt.Sprintf("Child %d: %s", i+1, OrPlaceholder(name)), fmt.Sprintf("Born: %s", OrPlaceholder(birthDate)))
	}
	c.Spacer(lineHeight / 2)
}

package render

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/finance"
)

// RenderPetition produces the Petition for Dissolution of Marriage: court
// caption, numbered allegations, prayer for relief, verification, signatures.
func RenderPetition(data CaseData, meta Metadata) ([]byte, error) {
	c := NewCanvas(meta.GeneratedAt)
	p := data.Petition

	writeCaption(c, p)

	c.CenteredTitle("PETITION FOR DISSOLUTION OF MARRIAGE")
	c.Spacer(lineHeight)

	c.Paragraph(fmt.Sprintf("NOW COMES the Petitioner, %s, and for their Petition for Dissolution of Marriage against the Respondent, %s, states as follows:",
		OrPlaceholder(p.PetitionerName), OrPlaceholder(p.RespondentName)))
	c.Spacer(lineHeight / 2)

	n := newParagraphCounter(c)

	residency := Placeholder
	if p.ResidencyMonths > 0 {
		residency = fmt.Sprintf("%d months", p.ResidencyMonths)
	}
	n.Write(fmt.Sprintf("The Petitioner has been a resident of the State of Illinois for %s, which period exceeds the 90 days required by law immediately preceding the filing of this Petition.", residency))

	n.Write(fmt.Sprintf("The parties were lawfully married on %s at %s, and the marriage is registered in that jurisdiction.",
		OrPlaceholder(p.MarriageDate), OrPlaceholder(p.MarriagePlace)))

	n.Write(groundsParagraph(p))

	if p.HasChildren {
		count := Placeholder
		if p.NumberOfChildren > 0 {
			count = fmt.Sprintf("%d", p.NumberOfChildren)
		}
		n.Write(fmt.Sprintf("%s minor child(ren) were born to or adopted by the parties during the marriage. A Parenting Plan allocating parental responsibilities accompanies or will accompany this Petition.", count))
	} else {
		n.Write("No minor children were born to or adopted by the parties during the marriage, and no children are expected.")
	}

	n.Write("The parties have accumulated certain marital property and marital debts which should be divided equitably between them, and each party should be awarded their own non-marital property.")

	n.Write("Petitioner requests that the Court determine any right to maintenance in accordance with the agreement of the parties or the applicable statutory guidelines.")

	c.Spacer(lineHeight)
	c.EnsureSpace(5 * lineHeight)
	c.Paragraph("WHEREFORE, the Petitioner respectfully requests that this Honorable Court enter a Judgment for Dissolution of Marriage, approve the parties' agreements, and grant such other relief as the Court deems just.")

	writeVerification(c, p)

	writeFooter(c, meta)

	return c.Output()
}

func writeCaption(c *Canvas, p finance.PetitionData) {
	county := OrPlaceholder(p.County)

	c.EnsureSpace(6 * lineHeight)
	c.CenteredTitle("IN THE CIRCUIT COURT OF")
	c.CenteredTitle(fmt.Sprintf("%s COUNTY, ILLINOIS", county))
	c.Spacer(lineHeight / 2)

	c.Line("In re: the Marriage of")
	c.Line(fmt.Sprintf("%s,", OrPlaceholder(p.PetitionerName)))
	c.IndentedLine(36, "Petitioner,")
	c.KeyValue("and", fmt.Sprintf("Case No. %s", OrPlaceholder(p.CaseNumber)))
	c.Line(fmt.Sprintf("%s,", OrPlaceholder(p.RespondentName)))
	c.IndentedLine(36, "Respondent.")
	c.Spacer(lineHeight / 2)
	c.Rule()
	c.Spacer(lineHeight / 2)
}

// groundsParagraph renders the statutory grounds text. Only the
// irreconcilable-breakdown grounds has boilerplate; any other string is
// printed verbatim in brackets rather than rejected.
func groundsParagraph(p finance.PetitionData) string {
	if finance.GroundsType(p.Grounds) == finance.GroundsIrreconcilable {
		separation := "a period"
		if p.SeparationMonths > 0 {
			separation = fmt.Sprintf("%d months", p.SeparationMonths)
		} else if p.SeparationDate != "" {
			separation = fmt.Sprintf("the period since %s", p.SeparationDate)
		}
		return fmt.Sprintf("Irreconcilable differences have caused the irretrievable breakdown of the marriage. The parties have lived separate and apart for %s, efforts at reconciliation have failed, and future attempts at reconciliation would be impracticable and not in the best interests of the family.", separation)
	}

	return fmt.Sprintf("The grounds for dissolution of the marriage are: [%s]", OrPlaceholder(p.Grounds))
}

func writeVerification(c *Canvas, p finance.PetitionData) {
	c.EnsureSpace(8 * lineHeight)
	c.Spacer(lineHeight)
	c.SectionHeader("VERIFICATION")
	c.Paragraph("Under penalties as provided by law pursuant to Section 1-109 of the Code of Civil Procedure, the undersigned certifies that the statements set forth in this instrument are true and correct, except as to matters therein stated to be on information and belief, and as to such matters the undersigned certifies as aforesaid that they verily believe the same to be true.")
	c.Spacer(lineHeight)

	c.EnsureSpace(4 * lineHeight)
	c.SignatureLine(fmt.Sprintf("%s, Petitioner", OrPlaceholder(p.PetitionerName)))
	c.Spacer(lineHeight / 2)
	c.SignatureLine("Date")
}

// paragraphCounter numbers petition allegations deterministically.
type paragraphCounter struct {
	c *Canvas
	n int
}

func newParagraphCounter(c *Canvas) *paragraphCounter {
	return &paragraphCounter{c: c}
}

func (p *paragraphCounter) Write(text string) {
	p.n++
	p.c.Paragraph(fmt.Sprintf("%d. %s", p.n, text))
	p.c.Spacer(lineHeight / 2)
}

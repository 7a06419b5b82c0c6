package render

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/finance"
)

// RenderSettlementAgreement produces the marital settlement agreement:
// recitals, property and debt division drawn from the financial data,
// maintenance clause, general provisions, signatures.
func RenderSettlementAgreement(data CaseData, meta Metadata) ([]byte, error) {
	c := NewCanvas(meta.GeneratedAt)
	p := data.Petition
	fin := data.Financial

	writeCaption(c, p)

	c.CenteredTitle("MARITAL SETTLEMENT AGREEMENT")
	c.Spacer(lineHeight)

	c.Paragraph(fmt.Sprintf("This Marital Settlement Agreement is made between %s (\"Petitioner\") and %s (\"Respondent\"), who were married on %s and who intend that this Agreement resolve all issues arising from the dissolution of their marriage.",
		OrPlaceholder(p.PetitionerName), OrPlaceholder(p.RespondentName), OrPlaceholder(p.MarriageDate)))
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("DIVISION OF ASSETS")
	if len(fin.Assets) == 0 {
		c.Line("The parties report no marital assets subject to division.")
	}
	for _, asset := range fin.Assets {
		c.EnsureSpace(lineHeight)
		c.KeyValue(fmt.Sprintf("%s - awarded to %s", OrPlaceholder(asset.Description), awardedParty(asset.Ownership)), FormatMoney(asset.Value))
	}
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 3*lineHeight)
	c.SectionHeader("DIVISION OF DEBTS")
	if len(fin.Debts) == 0 {
		c.Line("The parties report no marital debts subject to division.")
	}
	for _, debt := range fin.Debts {
		c.EnsureSpace(lineHeight)
		c.KeyValue(fmt.Sprintf("%s - assumed by %s", OrPlaceholder(debt.Creditor), awardedParty(debt.Ownership)), FormatMoney(debt.Balance))
	}
	c.Spacer(lineHeight / 2)

	c.EnsureSpace(headerHeight + 4*lineHeight)
	c.SectionHeader("MAINTENANCE")
	c.Paragraph("Each party waives any claim to maintenance from the other, now and in the future, except as otherwise stated in a written addendum signed by both parties. Each party acknowledges that this waiver is made knowingly after full disclosure of the other party's income, assets, and debts.")

	c.EnsureSpace(headerHeight + 4*lineHeight)
	c.SectionHeader("GENERAL PROVISIONS")
	c.Paragraph("Each party shall execute any documents necessary to carry out this Agreement. This Agreement shall be incorporated into the Judgment for Dissolution of Marriage. It is binding on the parties, their heirs, and assigns, and is governed by the laws of the State of Illinois.")

	c.EnsureSpace(6 * lineHeight)
	c.Spacer(lineHeight)
	c.SignatureLine(fmt.Sprintf("%s, Petitioner", OrPlaceholder(p.PetitionerName)))
	c.Spacer(lineHeight / 2)
	c.SignatureLine(fmt.Sprintf("%s, Respondent", OrPlaceholder(p.RespondentName)))

	writeFooter(c, meta)

	return c.Output()
}

// awardedParty maps recorded ownership onto the party keeping the item in an
// uncontested division.
func awardedParty(ownership finance.Ownership) string {
	switch ownership {
	case finance.OwnershipSpouse:
		return "Respondent"
	case finance.OwnershipJoint:
		return "the parties as agreed"
	default:
		return "Petitioner"
	}
}

// Package packaging bundles a user's generated documents into the filing
// package: a zip archive with cover sheet, instructions, checklist, and every
// ready document.
package packaging

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gobusters/ectolinq"
)

// Document is one persisted, ready document as packaging sees it.
type Document struct {
	FileName    string
	DisplayName string
	MimeType    string
	Content     string // base64 PDF or raw text, as persisted
	GeneratedAt time.Time
}

const artifactWidth = 64

// BuildCoverSheet lists the enclosed documents and the filing county.
func BuildCoverSheet(documents []Document, county string, now time.Time) string {
	var b strings.Builder

	banner(&b, "FRESHSTART IL - DIVORCE FILING PACKAGE")
	b.WriteString("\n")

	if county != "" {
		b.WriteString(fmt.Sprintf("Filing County: %s County, Illinois\n", county))
	} else {
		b.WriteString("Filing County: (not yet selected)\n")
	}
	b.WriteString(fmt.Sprintf("Prepared: %s\n", now.UTC().Format("January 2, 2006")))
	b.WriteString("\n")

	b.WriteString("Enclosed Documents:\n")
	names := ectolinq.Map(documents, func(d Document) string { return d.DisplayName })
	for i, name := range names {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
	}
	b.WriteString("\n")
	b.WriteString("Keep a copy of every document for your records.\n")

	return b.String()
}

// BuildFilingInstructions is the step-by-step filing walkthrough.
func BuildFilingInstructions(documents []Document, county string) string {
	var b strings.Builder

	banner(&b, "FILING INSTRUCTIONS")
	b.WriteString("\n")

	courthouse := "your county circuit court clerk"
	if county != "" {
		courthouse = fmt.Sprintf("the %s County Circuit Court Clerk", county)
	}

	steps := []string{
		"Print every document in the documents folder, single-sided.",
		"Review each document and confirm every answer is accurate. Do not sign yet.",
		"Sign the petition and financial affidavit in front of a notary if your county requires notarization.",
		fmt.Sprintf("File the documents with %s, in person or through the Illinois e-FileIL system.", courthouse),
		"Pay the filing fee, or file an Application for Waiver of Court Fees if you cannot afford it.",
		"Arrange service on your spouse, or have your spouse sign an Entry of Appearance to waive service.",
		"Attend the prove-up hearing when the court schedules it. Bring a copy of every filed document.",
	}

	for i, step := range steps {
		b.WriteString(fmt.Sprintf("Step %d:\n", i+1))
		for _, line := range wrapArtifactText(step, artifactWidth-4) {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// BuildChecklist is the pre-filing checklist derived from the document list.
func BuildChecklist(documents []Document) string {
	var b strings.Builder

	banner(&b, "FILING CHECKLIST")
	b.WriteString("\n")

	for _, document := range documents {
		b.WriteString(fmt.Sprintf("[ ] %s - printed and reviewed\n", document.DisplayName))
	}
	b.WriteString("\n")
	b.WriteString("[ ] Filing fee or fee waiver application ready\n")
	b.WriteString("[ ] Photo ID for the courthouse\n")
	b.WriteString("[ ] Copies of all documents (one set for you, one for your spouse)\n")
	b.WriteString("[ ] Proof of Illinois residency if requested\n")

	return b.String()
}

func banner(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("═", artifactWidth))
	b.WriteString("\n")

	padding := (artifactWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(strings.Repeat("═", artifactWidth))
	b.WriteString("\n")
}

func wrapArtifactText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

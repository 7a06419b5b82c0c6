package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ramsey-B/fern/pkg/responses"
)

const textWidth = 64

// RenderTextFallback assembles a formatted plain-text document from the raw
// answer set. This is the last rung of the fallback chain: it only does
// string formatting, so it cannot fail.
func RenderTextFallback(documentType DocumentType, raw responses.Responses, meta Metadata) []byte {
	var b strings.Builder

	writeTextBanner(&b, strings.ToUpper(documentType.DisplayName()))
	b.WriteString("\n")
	b.WriteString("This document was produced in plain-text format because the standard\n")
	b.WriteString("PDF rendering was unavailable. It contains every answer you provided.\n")
	b.WriteString("\n")

	writeTextRule(&b)
	for _, key := range raw.SortedKeys() {
		label := responses.Humanize(key)
		value := formatTextValue(raw[key])
		b.WriteString(fmt.Sprintf("%-32s %s\n", label+":", value))
	}
	writeTextRule(&b)

	b.WriteString("\n")
	for _, line := range wrapPlainText(disclaimerText, textWidth) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Generated: %s\n", meta.GeneratedAt.UTC().Format(time.RFC1123)))

	return []byte(b.String())
}

func writeTextBanner(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("═", textWidth))
	b.WriteString("\n")

	padding := (textWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(strings.Repeat("═", textWidth))
	b.WriteString("\n")
}

func writeTextRule(b *strings.Builder) {
	b.WriteString(strings.Repeat("─", textWidth))
	b.WriteString("\n")
}

func formatTextValue(value any) string {
	switch v := value.(type) {
	case nil:
		return Placeholder
	case string:
		if strings.TrimSpace(v) == "" {
			return Placeholder
		}
		return v
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func wrapPlainText(text string, width int) []string {
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

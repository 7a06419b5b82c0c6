package packaging

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
)

const (
	coverSheetName   = "00_COVER_SHEET.txt"
	instructionsName = "01_FILING_INSTRUCTIONS.txt"
	checklistName    = "02_FILING_CHECKLIST.txt"
	documentsFolder  = "documents/"
)

// BuildArchive writes the filing package zip and reports how many documents
// were skipped. A document that fails to decode is skipped with a warning;
// the archive fails only if nothing could be added.
func BuildArchive(logger ectologger.Logger, documents []Document, county string, now time.Time) ([]byte, int, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	artifacts := []struct {
		name    string
		content string
	}{
		{coverSheetName, BuildCoverSheet(documents, county, now)},
		{instructionsName, BuildFilingInstructions(documents, county)},
		{checklistName, BuildChecklist(documents)},
	}

	for _, artifact := range artifacts {
		entry, err := w.Create(artifact.name)
		if err != nil {
			w.Close()
			return nil, 0, fmt.Errorf("error creating archive entry %s: %w", artifact.name, err)
		}
		if _, err := entry.Write([]byte(artifact.content)); err != nil {
			w.Close()
			return nil, 0, fmt.Errorf("error writing archive entry %s: %w", artifact.name, err)
		}
	}

	added := 0
	for _, document := range documents {
		content, err := decodeContent(document)
		if err != nil {
			logger.WithError(err).WithField("file_name", document.FileName).Warn("skipping document that failed to decode")
			continue
		}

		entry, err := w.Create(documentsFolder + document.FileName)
		if err != nil {
			logger.WithError(err).WithField("file_name", document.FileName).Warn("skipping document that failed to add to archive")
			continue
		}
		if _, err := entry.Write(content); err != nil {
			logger.WithError(err).WithField("file_name", document.FileName).Warn("skipping document that failed to write to archive")
			continue
		}
		added++
	}

	skipped := len(documents) - added

	if err := w.Close(); err != nil {
		return nil, skipped, fmt.Errorf("error finalizing archive: %w", err)
	}

	if added == 0 {
		return nil, skipped, fmt.Errorf("no documents could be added to the archive")
	}

	return buf.Bytes(), skipped, nil
}

func decodeContent(document Document) ([]byte, error) {
	if document.MimeType == "application/pdf" {
		return base64.StdEncoding.DecodeString(document.Content)
	}
	return []byte(document.Content), nil
}

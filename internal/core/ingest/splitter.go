package ingest

import (
	"strings"

	"github.com/semdexhq/semdex/internal/models"
)

// SplitSections breaks extracted text on line boundaries, trims each line,
// and drops lines that become empty. Indices number the surviving sections
// consecutively, so blank source lines do not consume positions.
func SplitSections(text string) []models.Section {
	lines := strings.Split(text, "\n")
	sections := make([]models.Section, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sections = append(sections, models.Section{Text: line, Index: len(sections)})
	}
	return sections
}

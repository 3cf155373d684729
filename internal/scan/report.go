package scan

import (
	"fmt"
	"strings"

	"tserr/internal/model"
)

const (
	// MaxFileEntries caps the file table. The cap is applied to the
	// ranked list BEFORE the node_modules filter, so an excluded
	// heavy-hitter is not backfilled by the 21st-ranked file.
	MaxFileEntries = 20

	// ExcludedPrefix hides dependency-internal files from the report.
	ExcludedPrefix = "node_modules"

	separatorWidth = 60
	sampleLines    = 3
)

// GenerateReport renders the two ranked tables as plain text. With
// verbose set, each entry is followed by up to three of its diagnostic
// lines.
func GenerateReport(s model.Summary, verbose bool) string {
	var b strings.Builder

	for _, t := range s.Codes {
		fmt.Fprintf(&b, "%s: %d errors\n", t.Key, t.Count())
		if verbose {
			writeSamples(&b, t)
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n")
	b.WriteString("Files with most errors:\n")

	files := s.Files
	if len(files) > MaxFileEntries {
		files = files[:MaxFileEntries]
	}
	for _, t := range files {
		if IsExcluded(t.Key) {
			continue
		}
		fmt.Fprintf(&b, "%s: %d errors\n", t.Key, t.Count())
		if verbose {
			writeSamples(&b, t)
		}
	}

	return b.String()
}

func writeSamples(b *strings.Builder, t model.Tally) {
	n := len(t.Matches)
	if n > sampleLines {
		n = sampleLines
	}
	for _, m := range t.Matches[:n] {
		fmt.Fprintf(b, "    %s\n", m.Text)
	}
	if t.Count() > sampleLines {
		fmt.Fprintf(b, "    ... and %d more\n", t.Count()-sampleLines)
	}
}

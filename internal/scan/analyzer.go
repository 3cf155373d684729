package scan

import (
	"sort"
	"strings"

	"tserr/internal/model"
)

// Analyzer accumulates line matches into the two ranked tallies.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Summarize builds the error-code and file tallies from the scanned
// lines and ranks each most-frequent first. The sort is stable, so keys
// with equal counts keep the order in which they first appeared in the
// input.
func (a *Analyzer) Summarize(input string, matches []model.LineMatch, totalLines int) model.Summary {
	codes := newTallySet()
	files := newTallySet()

	for _, m := range matches {
		if m.Code != "" {
			codes.add(m.Code, m)
		}
		if m.File != "" {
			files.add(m.File, m)
		}
	}

	return model.Summary{
		Input:      input,
		TotalLines: totalLines,
		Codes:      codes.ranked(),
		Files:      files.ranked(),
	}
}

// tallySet is a grouping structure that remembers the order in which
// keys were first inserted. Ranking must be able to break count ties by
// encounter order, so a plain map isn't enough.
type tallySet struct {
	index   map[string]int
	tallies []model.Tally
}

func newTallySet() *tallySet {
	return &tallySet{index: make(map[string]int)}
}

func (s *tallySet) add(key string, m model.LineMatch) {
	i, ok := s.index[key]
	if !ok {
		i = len(s.tallies)
		s.index[key] = i
		s.tallies = append(s.tallies, model.Tally{Key: key})
	}
	s.tallies[i].Matches = append(s.tallies[i].Matches, m)
}

func (s *tallySet) ranked() []model.Tally {
	out := make([]model.Tally, len(s.tallies))
	copy(out, s.tallies)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Matches) > len(out[j].Matches)
	})
	return out
}

// IsExcluded reports whether a file key is hidden from the stdout
// report. Errors inside dependencies are almost always induced by the
// user's own type errors, so they only add noise to the ranking.
func IsExcluded(key string) bool {
	return strings.HasPrefix(key, ExcludedPrefix)
}

package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tserr/internal/model"
)

func scanText(t *testing.T, text string) model.Summary {
	t.Helper()
	matches, total, err := NewParser().Parse(strings.NewReader(text))
	require.NoError(t, err)
	return NewAnalyzer().Summarize("test-input.txt", matches, total)
}

func TestSummarizeGroupsAndRanks(t *testing.T) {
	s := scanText(t, strings.Join([]string{
		"a.ts(1,1): error TS2322: x",
		"a.ts(2,2): error TS2322: y",
		"b.ts(1,1): error TS7006: z",
	}, "\n"))

	require.Len(t, s.Codes, 2)
	assert.Equal(t, "TS2322", s.Codes[0].Key)
	assert.Equal(t, 2, s.Codes[0].Count())
	assert.Equal(t, "TS7006", s.Codes[1].Key)
	assert.Equal(t, 1, s.Codes[1].Count())

	require.Len(t, s.Files, 2)
	assert.Equal(t, "a.ts", s.Files[0].Key)
	assert.Equal(t, 2, s.Files[0].Count())
	assert.Equal(t, "b.ts", s.Files[1].Key)
	assert.Equal(t, 1, s.Files[1].Count())

	assert.Equal(t, "test-input.txt", s.Input)
	assert.Equal(t, 3, s.TotalLines)
}

func TestRankingTiesKeepEncounterOrder(t *testing.T) {
	// TS1111 and TS2222 both occur twice; TS3333 occurs three times.
	// TS1111 was seen first, so it must rank ahead of TS2222.
	s := scanText(t, strings.Join([]string{
		"a.ts(1,1): error TS1111: m",
		"b.ts(1,1): error TS2222: m",
		"c.ts(1,1): error TS3333: m",
		"d.ts(1,1): error TS3333: m",
		"e.ts(1,1): error TS2222: m",
		"f.ts(1,1): error TS1111: m",
		"g.ts(1,1): error TS3333: m",
	}, "\n"))

	require.Len(t, s.Codes, 3)
	assert.Equal(t, "TS3333", s.Codes[0].Key)
	assert.Equal(t, "TS1111", s.Codes[1].Key)
	assert.Equal(t, "TS2222", s.Codes[2].Key)
}

func TestTalliesAreIndependent(t *testing.T) {
	// One line feeds only the code tally, one only the file tally, one
	// feeds both.
	s := scanText(t, strings.Join([]string{
		"error TS18003: No inputs were found in config file.",
		"src/util.ts(3,1): 'x' is declared but its value is never read.",
		"src/util.ts(9,2): error TS2322: mismatch",
	}, "\n"))

	codeTotal := 0
	for _, c := range s.Codes {
		codeTotal += c.Count()
	}
	fileTotal := 0
	for _, f := range s.Files {
		fileTotal += f.Count()
	}

	assert.Equal(t, 2, codeTotal)
	assert.Equal(t, 2, fileTotal)
	require.Len(t, s.Files, 1)
	assert.Equal(t, "src/util.ts", s.Files[0].Key)
}

func TestTalliesKeepLinesInInputOrder(t *testing.T) {
	s := scanText(t, strings.Join([]string{
		"a.ts(1,1): error TS2322: first",
		"b.ts(1,1): error TS7006: other",
		"a.ts(5,1): error TS2322: second",
	}, "\n"))

	require.Len(t, s.Codes, 2)
	ts2322 := s.Codes[0]
	require.Equal(t, "TS2322", ts2322.Key)
	require.Len(t, ts2322.Matches, 2)
	assert.Equal(t, 1, ts2322.Matches[0].Num)
	assert.Equal(t, 3, ts2322.Matches[1].Num)
}

func TestIsExcluded(t *testing.T) {
	assert.True(t, IsExcluded("node_modules/@types/react/index.d.ts"))
	assert.False(t, IsExcluded("src/node_modules_helper.ts"))
	assert.False(t, IsExcluded("src/app.ts"))
}

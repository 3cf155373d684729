package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tserr/internal/model"
)

func TestParseSingleLines(t *testing.T) {
	for _, tc := range []struct {
		name    string
		line    string
		skipped bool
		code    string
		file    string
		row     int
		col     int
	}{
		{
			name: "code and file",
			line: "src/app.ts(12,5): error TS2322: Type 'string' is not assignable to type 'number'.",
			code: "TS2322",
			file: "src/app.ts",
			row:  12,
			col:  5,
		},
		{
			name: "code without file position",
			line: "error TS18003: No inputs were found in config file.",
			code: "TS18003",
		},
		{
			name: "file position without error code",
			line: "src/util.ts(3,1): 'x' is declared but its value is never read.",
			file: "src/util.ts",
			row:  3,
			col:  1,
		},
		{
			name: "first code wins on a line with several",
			line: "a.ts(1,2): error TS1005: ',' expected. error TS2300: Duplicate identifier.",
			code: "TS1005",
			file: "a.ts",
			row:  1,
			col:  2,
		},
		{
			name: "any whitespace between error and the token",
			line: "a.ts(1,2): error \t TS2304: Cannot find name 'foo'.",
			code: "TS2304",
			file: "a.ts",
			row:  1,
			col:  2,
		},
		{
			name: "parenthesis without a numeric position",
			line: "webpack.config.js(see docs): unsupported option",
			file: "webpack.config.js",
		},
		{
			name:    "error word without a TS token",
			line:    "error: something else broke",
			skipped: true,
		},
		{
			name:    "unrelated line",
			line:    "Compilation finished with 3 errors",
			skipped: true,
		},
		{
			name:    "empty line",
			line:    "",
			skipped: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			matches, total, err := NewParser().Parse(strings.NewReader(tc.line))
			require.NoError(t, err)

			if tc.skipped {
				assert.Empty(t, matches)
				return
			}

			require.Len(t, matches, 1)
			want := model.LineMatch{
				Num:  1,
				Text: tc.line,
				Code: tc.code,
				File: tc.file,
				Row:  tc.row,
				Col:  tc.col,
			}
			assert.Equal(t, want, matches[0])
			assert.Equal(t, 1, total)
		})
	}
}

func TestParseNumbersLinesAcrossTheWholeInput(t *testing.T) {
	input := strings.Join([]string{
		"Starting compilation in watch mode...",
		"a.ts(1,1): error TS2322: first",
		"",
		"b.ts(2,2): error TS7006: second",
		"Found 2 errors.",
	}, "\n")

	matches, total, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].Num)
	assert.Equal(t, 4, matches[1].Num)
}

func TestParseHandlesLongLines(t *testing.T) {
	// Deeply nested type errors can blow past bufio's default 64K line
	// limit; the parser widens the buffer.
	long := "a.ts(1,1): error TS2322: " + strings.Repeat("x", 200*1024)

	matches, total, err := NewParser().Parse(strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, matches, 1)
	assert.Equal(t, "TS2322", matches[0].Code)
}

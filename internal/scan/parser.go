package scan

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"tserr/internal/model"
)

// Parser handles the line-by-line extraction of tsc diagnostic output.
type Parser struct {
	codeRe *regexp.Regexp
	fileRe *regexp.Regexp
}

// NewParser creates a Parser with the two extraction patterns compiled.
func NewParser() *Parser {
	// A typical diagnostic line looks like:
	//   src/app.ts(12,5): error TS2322: Type 'string' is not assignable...
	// The two patterns are independent: a line may match either, both,
	// or neither.
	return &Parser{
		codeRe: regexp.MustCompile(`error\s+(TS\d+)`),
		// Anchored prefix up to the first '(' plus an optional
		// "(row,col" position. The position digits are only needed for
		// the detail views; the key is the prefix alone.
		fileRe: regexp.MustCompile(`^([^(]+)\((?:(\d+),(\d+))?`),
	}
}

// Parse scans the diagnostics stream line by line and returns the lines
// that matched at least one pattern, plus the total number of lines
// seen. A line with multiple error codes uses only the first; lines
// matching neither pattern are silently skipped.
func (p *Parser) Parse(r io.Reader) ([]model.LineMatch, int, error) {
	scanner := bufio.NewScanner(r)
	// tsc can emit very long lines for deeply nested type mismatches
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var matches []model.LineMatch
	total := 0
	for scanner.Scan() {
		total++
		line := scanner.Text()
		m := model.LineMatch{Num: total, Text: line}

		if sub := p.codeRe.FindStringSubmatch(line); sub != nil {
			m.Code = sub[1]
		}
		if sub := p.fileRe.FindStringSubmatch(line); sub != nil {
			m.File = sub[1]
			if sub[2] != "" {
				// Errors are ignored: the digits already matched \d+
				m.Row, _ = strconv.Atoi(sub[2])
				m.Col, _ = strconv.Atoi(sub[3])
			}
		}

		if m.Code == "" && m.File == "" {
			continue
		}
		matches = append(matches, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, total, err
	}
	return matches, total, nil
}

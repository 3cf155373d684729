package model

// LineMatch is the result of scanning one line of compiler output.
// A line may carry an error code, a file position, both, or neither;
// lines with neither are never stored.
type LineMatch struct {
	Num  int    // 1-based line number in the diagnostics file
	Text string // the full diagnostic line
	Code string // error code token (e.g. TS2322), "" if absent
	File string // source path preceding the first '(', "" if absent
	Row  int    // source line from the "(row,col)" suffix, 0 if absent
	Col  int    // source column, 0 if absent
}

// Tally groups every diagnostic line that shares a key (an error code
// or a file path), in the order the lines appeared in the input.
type Tally struct {
	Key     string
	Matches []LineMatch
}

// Count is the number of diagnostic lines grouped under the key.
func (t Tally) Count() int {
	return len(t.Matches)
}

// Summary is the processed result of one scan. Both tally slices are
// ranked most-frequent first; ties keep the order in which the keys
// were first seen in the input.
type Summary struct {
	Input      string // path the diagnostics were read from
	TotalLines int    // lines scanned, matching or not
	Codes      []Tally
	Files      []Tally
}

package model

import (
	"fmt"
	"os"
	"strings"
)

// LineContext is a window of up to five lines around a position in a
// source file, used by the detail views to show the code a diagnostic
// points at.
type LineContext struct {
	Before2    string // Two lines before the target
	Before1    string // Line before the target
	Target     string // The line the diagnostic points at
	After1     string // Line after the target
	After2     string // Two lines after the target
	LineNumber int    // Line number of the target
	HasBefore2 bool
	HasBefore1 bool
	HasAfter1  bool
	HasAfter2  bool
	ErrorMsg   string // Set if the source file couldn't be read
}

// GetLineContext reads a source file and returns the target line with
// surrounding context. Errors are reported in-band via ErrorMsg so the
// views can render them inline instead of failing the whole screen.
func GetLineContext(filePath string, lineNumber int) LineContext {
	result := LineContext{LineNumber: lineNumber}

	// Diagnostics carry paths relative to the compiler's working
	// directory; tilde shows up when the user fed us a hand-edited file.
	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			filePath = strings.Replace(filePath, "~", home, 1)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	// Convert to 0-indexed
	idx := lineNumber - 1
	result.Target = lines[idx]

	if idx >= 2 {
		result.Before2 = lines[idx-2]
		result.HasBefore2 = true
	}
	if idx >= 1 {
		result.Before1 = lines[idx-1]
		result.HasBefore1 = true
	}
	if idx+1 < len(lines) {
		result.After1 = lines[idx+1]
		result.HasAfter1 = true
	}
	if idx+2 < len(lines) {
		result.After2 = lines[idx+2]
		result.HasAfter2 = true
	}

	return result
}

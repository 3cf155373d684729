package scan

import (
	"fmt"
	"os"
)

// DefaultInputFile is where the compiler output is expected when no
// path is given on the command line. Produce it with:
//
//	npx tsc --noEmit > ts-errors.txt 2>&1
const DefaultInputFile = "ts-errors.txt"

// LoadDiagnostics reads the whole diagnostics file into memory.
// Inputs are compiler logs, small enough that streaming isn't worth it.
func LoadDiagnostics(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(data), nil
}

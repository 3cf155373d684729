package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tserr/internal/model"
	"tserr/internal/scan"
	"tserr/internal/tui"
	"tserr/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "tserr-dev",
		Repository: "tserr",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/tserr-dev/tserr/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tserr [options] [input-path]\n\n")
		fmt.Fprintf(os.Stderr, "tserr summarizes TypeScript compiler diagnostic output.\n")
		fmt.Fprintf(os.Stderr, "It ranks error codes and source files by how many errors they produced.\n")
		fmt.Fprintf(os.Stderr, "Capture the compiler output first: npx tsc --noEmit > %s 2>&1\n\n", scan.DefaultInputFile)
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tserr                   # Summarize ./%s to stdout\n", scan.DefaultInputFile)
		fmt.Fprintf(os.Stderr, "  tserr build-errors.txt  # Summarize a specific file\n")
		fmt.Fprintf(os.Stderr, "  tserr -v -o report.txt  # Save a detailed report to a file\n")
		fmt.Fprintf(os.Stderr, "  tserr --json            # Output the full summary as JSON\n")
		fmt.Fprintf(os.Stderr, "  tserr --tui             # Browse the errors interactively\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the full summary data as JSON")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse the summary in a TUI")
	outputFlag := pflag.StringP("output", "o", "", "Save the report to the specified file")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include sample diagnostic lines in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("tserr version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	inputPath := scan.DefaultInputFile
	if pflag.NArg() > 0 {
		inputPath = pflag.Arg(0)
	}

	summary := mustSummarize(inputPath)

	if *webFlag {
		web.StartServer(summary)
		return
	}

	if *tuiFlag {
		runTuiMode(summary)
		return
	}

	if *jsonFlag {
		runJsonMode(summary)
		return
	}

	// Default: print the ranked report to stdout
	runReportMode(summary, *outputFlag, *verboseFlag)
}

// mustSummarize loads and scans the diagnostics file, or exits with
// guidance on how to produce it. Failure here is fatal before any
// output is written.
func mustSummarize(path string) model.Summary {
	text, err := scan.LoadDiagnostics(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tserr: %v (run `npx tsc --noEmit > %s 2>&1` first)\n", err, path)
		os.Exit(1)
	}

	parser := scan.NewParser()
	matches, total, err := parser.Parse(strings.NewReader(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tserr: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	analyzer := scan.NewAnalyzer()
	return analyzer.Summarize(path, matches, total)
}

func runReportMode(s model.Summary, outputFile string, verbose bool) {
	report := scan.GenerateReport(s, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Print(report)
	}
}

func runJsonMode(s model.Summary) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(s)
}

func runTuiMode(s model.Summary) {
	m := tui.InitialModel(s)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

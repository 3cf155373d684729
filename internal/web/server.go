package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"tserr/internal/model"
	"tserr/internal/scan"
)

// StartServer serves the computed summary on the default port 8080.
// The summary is built once before the server starts; reload the page
// after re-running the compiler and tserr to get fresh numbers.
func StartServer(summary model.Summary) {
	mux := http.NewServeMux()

	mux.HandleFunc("/", handleIndex(summary))
	mux.HandleFunc("/api/summary", handleSummary(summary))
	mux.HandleFunc("/api/context", handleContext)

	port := "8080"
	fmt.Printf("Starting tserr web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func handleSummary(summary model.Summary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := struct {
			model.Summary
			Report        string `json:"Report"`
			VerboseReport string `json:"VerboseReport"`
			Version       string `json:"Version"`
		}{
			Summary:       summary,
			Report:        scan.GenerateReport(summary, false),
			VerboseReport: scan.GenerateReport(summary, true),
			Version:       model.Version,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func handleContext(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}
	line, err := strconv.Atoi(r.URL.Query().Get("line"))
	if err != nil || line < 1 {
		http.Error(w, "line must be a positive integer", 400)
		return
	}

	ctx := model.GetLineContext(path, line)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ctx)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>tserr — {{.Input}}</title>
<style>
  body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 60rem; }
  h1 { font-size: 1.4rem; }
  h2 { font-size: 1.1rem; margin-top: 2rem; }
  table { border-collapse: collapse; }
  td, th { padding: 0.2rem 1rem 0.2rem 0; text-align: left; }
  .count { text-align: right; }
  .excluded { color: #999; }
  .version { color: #999; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>TypeScript error summary</h1>
<p>{{.Input}} · {{.TotalLines}} lines scanned · <span class="version">tserr {{.Version}}</span></p>

<h2>Error codes</h2>
<table>
<tr><th>Code</th><th class="count">Errors</th></tr>
{{range .Codes}}<tr><td>{{.Key}}</td><td class="count">{{.Count}}</td></tr>
{{end}}</table>

<h2>Files with most errors</h2>
<p class="excluded">Greyed entries are inside node_modules and hidden from the CLI report.</p>
<table>
<tr><th>File</th><th class="count">Errors</th></tr>
{{range .Files}}<tr{{if .Excluded}} class="excluded"{{end}}><td>{{.Key}}</td><td class="count">{{.Count}}</td></tr>
{{end}}</table>
</body>
</html>
`))

func handleIndex(summary model.Summary) http.HandlerFunc {
	type row struct {
		Key      string
		Count    int
		Excluded bool
	}
	data := struct {
		Input      string
		TotalLines int
		Version    string
		Codes      []row
		Files      []row
	}{
		Input:      summary.Input,
		TotalLines: summary.TotalLines,
		Version:    model.Version,
	}
	for _, t := range summary.Codes {
		data.Codes = append(data.Codes, row{Key: t.Key, Count: t.Count()})
	}
	for _, t := range summary.Files {
		data.Files = append(data.Files, row{Key: t.Key, Count: t.Count(), Excluded: scan.IsExcluded(t.Key)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := indexTmpl.Execute(w, data); err != nil {
			log.Printf("render: %v", err)
		}
	}
}

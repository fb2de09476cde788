// Package schemas holds the JSON Schema documents for the essay report artifacts.
package schemas

import "embed"

// Schema file names.
const (
	EssayReport    = "essay_report.schema.json"
	AnalyzeRequest = "analyze_request.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

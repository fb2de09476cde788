// Package archive writes finished analyses to a per-student directory tree.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/essay-grader/internal/types"
)

// File names written into each student directory.
const (
	AnalysisFile = "analysis.json"
	EssayFile    = "redacao.txt"
	FeedbackFile = "feedback.txt"
)

const (
	maxNameLength = 100
	fallbackName  = "sem_nome"
	validNameRune = "-_.() abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// SanitizeName keeps only whitelisted characters and truncates to 100. Names that
// end up empty or made only of dots are replaced so they cannot escape the root.
func SanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if strings.ContainsRune(validNameRune, r) {
			sb.WriteRune(r)
		}
	}
	out := sb.String()
	if len(out) > maxNameLength {
		out = out[:maxNameLength]
	}
	if strings.Trim(out, ". ") == "" {
		return fallbackName
	}
	return out
}

// Entry is one analysis to archive.
type Entry struct {
	ClassName       string
	Theme           string
	StudentName     string
	TeacherComments string
	Report          *types.EssayReport
}

// Writer writes entries under Root.
type Writer struct {
	Root string
}

// NewWriter creates a writer rooted at root.
func NewWriter(root string) *Writer {
	return &Writer{Root: root}
}

// Dir returns the student directory for an entry: <root>/<class>/<theme>/<student>.
func (w *Writer) Dir(e Entry) string {
	return filepath.Join(w.Root, SanitizeName(e.ClassName), SanitizeName(e.Theme), SanitizeName(e.StudentName))
}

// Write creates the student directory and its three files, returning the directory.
func (w *Writer) Write(e Entry) (string, error) {
	if e.Report == nil {
		return "", fmt.Errorf("archive entry has no report")
	}

	dir := w.Dir(e)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	analysis, err := json.MarshalIndent(e.Report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{AnalysisFile, analysis},
		{EssayFile, []byte(e.Report.Text)},
		{FeedbackFile, []byte(FeedbackText(e.Report.Feedback, e.TeacherComments))},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return dir, nil
}

// FeedbackText appends teacher comments, when present, to the generated feedback.
func FeedbackText(feedback, comments string) string {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return feedback
	}
	return feedback + "\n\nComentários do professor:\n" + comments + "\n"
}

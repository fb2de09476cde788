// Package ingestion reads essays from files into plain text.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported input format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatDocx Format = "docx"
)

var extensions = map[string]Format{
	".txt":  FormatText,
	".md":   FormatText,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".docx": FormatDocx,
}

// UnsupportedFormatError is returned for files with an unknown extension.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported essay format %q: %s", e.Extension, e.Path)
}

// Essay is the cleaned text of one input file.
type Essay struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Text   string `json:"text"`
	Hash   string `json:"hash"`
}

// DetectFormat maps a path's extension to a Format.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Path: path, Extension: ext}
}

// IsSupported reports whether ReadEssay accepts the path.
func IsSupported(path string) bool {
	_, err := DetectFormat(path)
	return err == nil
}

// ReadEssay reads and cleans an essay file.
func ReadEssay(path string) (*Essay, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var text string
	switch format {
	case FormatDocx:
		text, err = readDocx(path)
	default:
		var raw []byte
		raw, err = os.ReadFile(path)
		if err != nil {
			break
		}
		if format == FormatHTML {
			text, err = ExtractHTMLText(string(raw))
		} else {
			text = string(raw)
		}
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text = CleanText(text)
	return &Essay{Path: path, Format: format, Text: text, Hash: computeHash(text)}, nil
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

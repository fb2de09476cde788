package main

import (
	"os"
	"testing"
)

// TestMain keeps a developer's LANGUAGETOOL_URL or GEMINI_API_KEY from leaking into tests.
func TestMain(m *testing.M) {
	for _, key := range []string{"LANGUAGETOOL_URL", "GEMINI_API_KEY", "GEMINI_MODEL", "DATABASE_URL", "ESSAY_PARAGRAPH_MODE", "ESSAY_DEGRADED_MODE"} {
		_ = os.Unsetenv(key)
	}
	os.Exit(m.Run())
}

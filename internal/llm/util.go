package llm

import "strings"

// CleanJSONBlock removes markdown fences and any preamble before the first JSON
// object or array. Models wrap JSON in fences even when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			lang := text[:idx]
			if len(lang) < 20 && !strings.ContainsAny(lang, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return text
	}
	if idx := strings.IndexAny(text, "{["); idx >= 0 {
		return strings.TrimSpace(text[idx:])
	}
	return text
}

package llm

import (
	"fmt"
	"strings"
)

// Field is one expected key in a structured response.
type Field struct {
	Name        string
	Type        string
	Description string
}

// Schema describes a structured annotation task.
type Schema struct {
	Instructions string
	Fields       []Field
}

// BuildPrompt renders the instructions, the expected JSON shape and the input text.
func BuildPrompt(schema Schema, input string) string {
	var sb strings.Builder
	sb.WriteString(schema.Instructions)
	sb.WriteString("\n\nReturn ONLY valid JSON with this structure:\n{\n")
	for i, f := range schema.Fields {
		typ := f.Type
		if typ == "" {
			typ = "string"
		}
		fmt.Fprintf(&sb, "  %q: %s", f.Name, typ)
		if f.Description != "" {
			fmt.Fprintf(&sb, " // %s", f.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\nTEXT:\n")
	sb.WriteString(input)
	return sb.String()
}

package prompts

import (
	"strings"
)

// ContextLabel prefixes user-supplied context when it is appended to a
// prompt template.
const ContextLabel = "Additional context from user: "

// Compose builds the final prompt sent to the model. Whitespace-only context
// is treated as absent and the template is returned verbatim.
func Compose(template, freeText string) string {
	if strings.TrimSpace(freeText) == "" {
		return template
	}
	return template + "\n\n" + ContextLabel + freeText
}

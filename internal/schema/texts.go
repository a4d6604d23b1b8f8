package schema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Text is a display-text override for one field. Inline emphasis markup is
// kept; everything else is stripped.
type Text struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("em", "strong", "b", "i", "small", "abbr")
		p.AllowAttrs("title").OnElements("abbr")
		textPolicy = p
	})
	return textPolicy
}

// PlainText strips markup from display text for terminal output.
func PlainText(s string) string {
	return html.UnescapeString(bluemonday.StrictPolicy().Sanitize(s))
}

// Package sanitize normalizes untrusted free-text input before it is
// stored, so that a value rendered later in a browser cannot execute
// as markup.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	reScriptTags = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reJSEvents   = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	reJSProtocol = regexp.MustCompile(`(?i)javascript\s*:`)
)

// Clean trims leading/trailing whitespace and neutralizes HTML/script
// content. It always succeeds; worst case it returns an empty string.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = reScriptTags.ReplaceAllString(s, "")
	s = reJSEvents.ReplaceAllString(s, "")
	s = reJSProtocol.ReplaceAllString(s, "")
	return html.EscapeString(s)
}

// Value cleans string values and passes everything else through unchanged.
func Value(v any) any {
	if s, ok := v.(string); ok {
		return Clean(s)
	}
	return v
}

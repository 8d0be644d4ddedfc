// Package redact scrubs error descriptions before they are logged or echoed
// back to a client in a 500 response. Panics recovered while handling a
// request can carry goroutine dumps, source paths and addresses; none of
// that should leave the process verbatim.
package redact

import "regexp"

// Placeholders substituted for redacted fragments
const (
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedHostPlaceholder  = "[REDACTED_HOST]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedAddrPlaceholder  = "[REDACTED_ADDR]"
)

// rule pairs a pattern with its replacement. Rules run in order, so broader
// fragments (whole stack traces) are removed before narrower ones.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	{regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(?:\n\t[^\n]*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`\b0x[0-9a-fA-F]{6,}\b`), RedactedAddrPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}(:\d+)?`), RedactedPathPlaceholder},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}:\d{1,5}\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

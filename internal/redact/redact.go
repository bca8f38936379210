// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Storage errors coming out of pgx can carry connection
// strings, host names, file paths and the SQL that failed; none of that should
// reach a log sink verbatim.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules may change what later rules see.
var rules = []rule{
	// Credentials embedded in connection URLs: postgres://user:pass@
	{
		pattern:     regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb|db|database|connection)://[^@\s]+@`),
		replacement: RedactedCredentialPlaceholder,
	},
	// password=..., pwd: ...
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]+`),
		replacement: RedactedCredentialPlaceholder,
	},
	// Everything from a SQL keyword to the end of the line
	{
		pattern:     regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b.*`),
		replacement: RedactedSQLPlaceholder,
	},
	// libpq style key=value connection details
	{
		pattern:     regexp.MustCompile("(?i)\\b(host|hostaddr|user|dbname)=[^\\s:'\"`]+"),
		replacement: "$1=" + RedactionPlaceholder,
	},
	// host:port pairs
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9][A-Za-z0-9.-]*:\d{2,5}\b`),
		replacement: RedactedHostPlaceholder,
	},
	// Unix file paths with at least two segments
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
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

package logger

import "strings"

// RedactEmail masks a visitor email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
// Anything that does not look like an address collapses to "***@***".
func RedactEmail(email string) string {
	local, domainPart, ok := strings.Cut(email, "@")
	if !ok || domainPart == "" {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domainPart
	}
	return "***@" + domainPart
}

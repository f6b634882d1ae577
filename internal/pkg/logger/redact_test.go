package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"a@example.com", "***@example.com"},
		{"not-an-email", "***@***"},
		{"trailing@", "***@***"},
		{"", "***@***"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RedactEmail(tc.in), "input %q", tc.in)
	}
}

func TestRedactPIIValue(t *testing.T) {
	// Email-keyed fields are masked outright
	assert.Equal(t, "jo***@example.com", redactPIIValue("email", "john@example.com"))
	assert.Equal(t, "jo***@example.com", redactPIIValue("subscriberEmail", "john@example.com"))

	// Addresses embedded in free text are masked in place
	got := redactPIIValue("message", "reach me at john.doe@example.com thanks")
	assert.Equal(t, "reach me at jo***@example.com thanks", got)

	// Non-PII values pass through
	assert.Equal(t, "1234567890", redactPIIValue("id", "1234567890"))
}

package services

import (
	"errors"
	"strings"

	"github.com/doeshing/wf-go/internal/domain"
)

// indicator is one fixed substring matched against diagnostic text.
type indicator struct {
	text string
	fold bool
}

func (m indicator) matches(diagnostic string) bool {
	if m.fold {
		return strings.Contains(strings.ToLower(diagnostic), strings.ToLower(m.text))
	}
	return strings.Contains(diagnostic, m.text)
}

// Session-expiry signatures emitted by the aws CLI across SSO and STS code
// paths. Any match short-circuits, so ordering does not affect the verdict.
var expiredSessionIndicators = []indicator{
	{text: "Error loading SSO Token"},
	{text: "Error when retrieving token from sso"},
	{text: "the SSO session associated with this profile has expired", fold: true},
	{text: "token has expired and refresh failed", fold: true},
	{text: "the security token included in the request is expired", fold: true},
	{text: "expiredtoken", fold: true},
}

var notFoundIndicators = []indicator{
	{text: "executable file not found"},
	{text: "command not found"},
}

// Classify assigns a failed invocation's diagnostic text to the error
// taxonomy. It always produces a value; unrecognized text, including empty
// or garbage input, is a generic failure carrying the raw message.
func Classify(diagnostic, profile string) domain.ClassifiedError {
	for _, ind := range expiredSessionIndicators {
		if ind.matches(diagnostic) {
			return domain.ClassifiedError{
				Class:   domain.ClassExpiredSession,
				Profile: profile,
				Message: diagnostic,
			}
		}
	}
	for _, ind := range notFoundIndicators {
		if ind.matches(diagnostic) {
			return domain.ClassifiedError{Class: domain.ClassNotFound, Message: diagnostic}
		}
	}
	return domain.ClassifiedError{Class: domain.ClassGeneric, Message: diagnostic}
}

// diagnosticOf extracts classifier input from any invocation failure.
func diagnosticOf(err error) string {
	if err == nil {
		return ""
	}
	var invErr *domain.InvocationError
	if errors.As(err, &invErr) {
		return invErr.Diagnostic()
	}
	return err.Error()
}

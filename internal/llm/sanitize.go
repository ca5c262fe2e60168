package llm

import (
	"errors"
	"regexp"
	"strings"

	app_errors "talky/backend/internal/errors"
)

// ConfigErrorMessage is the only text a caller ever sees for a credential problem.
const ConfigErrorMessage = "API configuration error. Please check backend .env file."

const redacted = "[REDACTED]"

// Shapes of provider secrets that must never leave the process, even when we
// were not told the exact value (e.g. a key echoed back by a proxy).
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`),
	regexp.MustCompile(`sk-[0-9A-Za-z_\-]{16,}`),
	regexp.MustCompile(`(?i)bearer\s+[0-9A-Za-z._\-]+`),
	regexp.MustCompile(`(?i)([?&]key=)[^&\s"]+`),
}

// Sanitizer is the boundary every upstream failure passes through before it
// is turned into a client-facing error.
type Sanitizer struct {
	secrets []string
}

// NewSanitizer returns a Sanitizer that also strips the given literal values.
func NewSanitizer(secrets ...string) *Sanitizer {
	s := &Sanitizer{}
	for _, v := range secrets {
		if strings.TrimSpace(v) != "" {
			s.secrets = append(s.secrets, v)
		}
	}
	return s
}

// Redact removes configured secret values and known secret shapes from msg.
func (s *Sanitizer) Redact(msg string) string {
	for _, secret := range s.secrets {
		msg = strings.ReplaceAll(msg, secret, redacted)
	}
	for _, re := range secretPatterns {
		msg = re.ReplaceAllStringFunc(msg, func(m string) string {
			if sub := re.FindStringSubmatch(m); len(sub) > 1 {
				return sub[1] + redacted
			}
			return redacted
		})
	}
	return msg
}

// Sanitize converts any provider error into an *app_errors.Error whose
// message is safe to return to the caller. Configuration problems, and any
// message that talks about an API key, collapse to ConfigErrorMessage.
func (s *Sanitizer) Sanitize(err error) error {
	if err == nil {
		return nil
	}
	clean := s.Redact(err.Error())

	switch {
	case errors.Is(err, app_errors.ErrConfiguration),
		strings.Contains(strings.ToLower(clean), "api key"):
		return app_errors.Wrap(app_errors.ErrConfiguration, ConfigErrorMessage, errors.New(clean))
	case errors.Is(err, app_errors.ErrInvalidRequest), errors.Is(err, app_errors.ErrValidation):
		return app_errors.Wrap(app_errors.ErrInvalidRequest, clean, errors.New(clean))
	case errors.Is(err, app_errors.ErrUpstream):
		return app_errors.Wrap(app_errors.ErrUpstream, clean, errors.New(clean))
	default:
		return app_errors.Wrap(app_errors.ErrInternal, "An unexpected internal server error occurred.", errors.New(clean))
	}
}

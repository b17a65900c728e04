package discord

import "supportbot/internal/domain"

// DomainErrorKey resolves an error to the translation key of its user-facing
// message. Non-domain errors map to the generic one.
func DomainErrorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return "errors.generic"
}

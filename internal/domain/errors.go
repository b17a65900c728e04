package domain

import "errors"

// Domain errors.
var (
	ErrFaqNotFound         = errors.New("faq not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTitleRequired       = errors.New("a title is required")
	ErrBodyRequired        = errors.New("a body is required")
	ErrReplyTargetRequired = errors.New("a target ticket is required")
	ErrNotRequester        = errors.New("only the ticket requester can reply")

	// ErrKeyNotFound is returned by KeyValue stores for absent keys.
	ErrKeyNotFound = errors.New("key not found")
)

// Code returns a stable machine code for a domain error, or "" when err is
// not a domain error. Adapters use the code to pick a translation key
// ("errors.<code>").
func Code(err error) string {
	switch {
	case errors.Is(err, ErrFaqNotFound):
		return "faq_not_found"
	case errors.Is(err, ErrCategoryNotFound):
		return "category_not_found"
	case errors.Is(err, ErrTicketNotFound):
		return "ticket_not_found"
	case errors.Is(err, ErrTitleRequired):
		return "title_required"
	case errors.Is(err, ErrBodyRequired):
		return "body_required"
	case errors.Is(err, ErrReplyTargetRequired):
		return "reply_target_required"
	case errors.Is(err, ErrNotRequester):
		return "not_requester"
	default:
		return ""
	}
}

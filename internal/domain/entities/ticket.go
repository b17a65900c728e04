package entities

import "time"

type TicketStatus string

const (
	StatusPending  TicketStatus = "PENDING"
	StatusAnswered TicketStatus = "ANSWERED"
	StatusClosed   TicketStatus = "CLOSED"
)

// TicketCategory carries the operator-authored compose form: an optional
// title/body template (with {{email}}, {{uuid}} and {{member_code}}
// placeholders) and a checklist shown before submission.
type TicketCategory struct {
	ID                    int64
	Name                  string
	NameI18n              map[string]string
	Order                 int
	GuideDescription      string
	GuideDescriptionI18n  map[string]string
	FormEnabled           bool
	FormButtonLabel       string
	FormButtonLabelI18n   map[string]string
	FormTemplate          string
	FormTemplateI18n      map[string]string
	FormTitleTemplate     string
	FormTitleTemplateI18n map[string]string
	FormChecklist         []string
	FormChecklistI18n     map[string][]string
	FormChecklistRequired bool
}

type Ticket struct {
	ID          int64
	RequesterID string
	CategoryID  *int64
	Title       string
	Body        string
	Status      TicketStatus
	EntrySource string
	Replies     []TicketReply
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TicketReply struct {
	ID         int64
	TicketID   int64
	AuthorID   string
	AuthorName string
	IsStaff    bool
	Body       string
	CreatedAt  time.Time
}

package compose

import (
	"strings"
	"unicode"
)

// Mode discriminates the two compose flows.
type Mode string

const (
	ModeNew   Mode = "new"
	ModeReply Mode = "reply"
)

// Form is the in-memory state of one ticket compose form. One Form exists
// per session; the Draft Store snapshots it on autosave and fills it on
// restore.
type Form struct {
	Mode           Mode
	CategoryID     *int64
	TargetTicketID *int64
	Title          string
	Body           string
}

// Reset clears the form for a fresh compose in the given mode.
func (f *Form) Reset(mode Mode) {
	*f = Form{Mode: mode}
}

// InsertTemplate prefills the form from a category's rendered templates.
// It never overwrites what the user already typed: the title is set only
// when currently empty, and the body template is appended after a blank
// line unless it is already contained in the body (repeated "insert
// template" taps must not duplicate it).
func (f *Form) InsertTemplate(titleTpl, bodyTpl string, ctx TemplateContext) {
	title := strings.TrimSpace(ApplyTemplate(titleTpl, ctx))
	if strings.TrimSpace(f.Title) == "" && title != "" {
		f.Title = title
	}

	body := ApplyTemplate(bodyTpl, ctx)
	if strings.TrimSpace(body) == "" {
		return
	}
	switch {
	case strings.TrimSpace(f.Body) == "":
		f.Body = body
	case strings.Contains(f.Body, strings.TrimSpace(body)):
		// already inserted
	default:
		f.Body = strings.TrimRightFunc(f.Body, unicode.IsSpace) + "\n\n" + body
	}
}

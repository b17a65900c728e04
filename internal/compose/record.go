package compose

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Record is the persisted snapshot of a compose form: a tagged union over
// Mode. Exactly one record exists per session slot; a save of either mode
// overwrites whatever was stored before.
type Record struct {
	Mode           Mode
	CategoryID     *int64
	TargetTicketID *int64
	Title          string
	Body           string
	SavedAt        time.Time
}

// meaningful reports whether the record is worth persisting: a blank body
// suppresses the write, except that in "new" mode a typed title alone is
// enough.
func (r Record) meaningful() bool {
	if strings.TrimSpace(r.Body) != "" {
		return true
	}
	return r.Mode == ModeNew && strings.TrimSpace(r.Title) != ""
}

// apply copies the record into the form, switching its mode.
func (r Record) apply(f *Form) {
	switch r.Mode {
	case ModeNew:
		f.Mode = ModeNew
		f.CategoryID = r.CategoryID
		f.TargetTicketID = nil
		f.Title = r.Title
		f.Body = r.Body
	case ModeReply:
		f.Mode = ModeReply
		f.CategoryID = nil
		f.TargetTicketID = r.TargetTicketID
		f.Title = ""
		f.Body = r.Body
	}
}

// Wire shapes. The stored JSON carries only the fields of its mode; decode
// is strict so that a record written by a different schema fails closed and
// is treated as absent.
type newDraftJSON struct {
	Mode       string `json:"mode"`
	CategoryID *int64 `json:"categoryId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	SavedAt    int64  `json:"savedAt"`
}

type replyDraftJSON struct {
	Mode           string `json:"mode"`
	TargetTicketID *int64 `json:"targetTicketId"`
	Body           string `json:"body"`
	SavedAt        int64  `json:"savedAt"`
}

func encodeRecord(r Record) ([]byte, error) {
	switch r.Mode {
	case ModeNew:
		return json.Marshal(newDraftJSON{
			Mode:       string(ModeNew),
			CategoryID: r.CategoryID,
			Title:      r.Title,
			Body:       r.Body,
			SavedAt:    r.SavedAt.UnixMilli(),
		})
	case ModeReply:
		return json.Marshal(replyDraftJSON{
			Mode:           string(ModeReply),
			TargetTicketID: r.TargetTicketID,
			Body:           r.Body,
			SavedAt:        r.SavedAt.UnixMilli(),
		})
	default:
		return nil, fmt.Errorf("encode draft: unknown mode %q", r.Mode)
	}
}

// decodeRecord parses a stored draft. It returns ok=false on invalid JSON,
// an unknown mode tag, unexpected fields or a missing savedAt; callers
// treat that as "no draft" and never raise it.
func decodeRecord(data []byte) (Record, bool) {
	var head struct {
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Record{}, false
	}

	switch Mode(head.Mode) {
	case ModeNew:
		var w newDraftJSON
		if !strictUnmarshal(data, &w) || w.SavedAt <= 0 {
			return Record{}, false
		}
		return Record{
			Mode:       ModeNew,
			CategoryID: w.CategoryID,
			Title:      w.Title,
			Body:       w.Body,
			SavedAt:    time.UnixMilli(w.SavedAt),
		}, true
	case ModeReply:
		var w replyDraftJSON
		if !strictUnmarshal(data, &w) || w.SavedAt <= 0 {
			return Record{}, false
		}
		return Record{
			Mode:           ModeReply,
			TargetTicketID: w.TargetTicketID,
			Body:           w.Body,
			SavedAt:        time.UnixMilli(w.SavedAt),
		}, true
	default:
		return Record{}, false
	}
}

func strictUnmarshal(data []byte, v any) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v) == nil
}

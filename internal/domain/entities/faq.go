package entities

import "time"

type FaqCategory struct {
	ID       int64
	Name     string
	NameI18n map[string]string
	Order    int
	GuideURL string
}

// FaqBlock is one structured content block of an article. Type is one of
// "paragraph", "heading", "callout", "bullets", "numbered", "divider",
// "image", "video" or "file"; unused fields stay zero.
type FaqBlock struct {
	Type  string   `json:"type"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
	URL   string   `json:"url,omitempty"`
	Name  string   `json:"name,omitempty"`
}

type Faq struct {
	ID         int64
	CategoryID int64
	Title      string
	TitleI18n  map[string]string
	Body       string
	BodyI18n   map[string]string
	Blocks     []FaqBlock
	BlocksI18n map[string][]FaqBlock
	IsPopular  bool
	IsHidden   bool
	Order      int
	Views      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

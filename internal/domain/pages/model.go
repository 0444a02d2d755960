package pages

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Block types understood by the renderer. Anything else renders as an
// empty string so newer editors can save block kinds older servers skip.
const (
	BlockText    = "text"
	BlockHeading = "heading"
	BlockImage   = "image"
)

type Block struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Level   int    `json:"level,omitempty"`
	Src     string `json:"src,omitempty"`
	Alt     string `json:"alt,omitempty"`
}

// Blocks is the ordered page content, stored as a jsonb column.
type Blocks []Block

func (b Blocks) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	out, err := json.Marshal(b)
	return string(out), err
}

func (b *Blocks) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = nil
		return nil
	default:
		return fmt.Errorf("unsupported blocks column type %T", value)
	}
}

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func (s SEO) Value() (driver.Value, error) {
	out, err := json.Marshal(s)
	return string(out), err
}

func (s *SEO) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = SEO{}
		return nil
	default:
		return fmt.Errorf("unsupported seo column type %T", value)
	}
}

type Page struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SiteID string `gorm:"type:uuid;not null;index" json:"siteId"`

	Name   string `gorm:"not null" json:"name"`
	Title  string `gorm:"not null" json:"title"`
	Slug   string `gorm:"not null;index" json:"slug"`
	Status string `gorm:"not null;default:'draft'" json:"status"`

	Content Blocks `gorm:"type:jsonb;not null;default:'[]'" json:"content"`
	SEO     SEO    `gorm:"column:seo;type:jsonb;not null;default:'{}'" json:"seo"`

	SortIndex int `gorm:"not null;default:0;index" json:"order"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

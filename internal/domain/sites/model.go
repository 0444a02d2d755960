package sites

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"sitebuilder-app/internal/domain/pages"
)

const (
	StatusUnpublished = "unpublished"
	StatusPublished   = "published"
)

type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Settings struct {
	Favicon string `json:"favicon"`
	Logo    string `json:"logo"`
	Colors  Colors `json:"colors"`
	Fonts   Fonts  `json:"fonts"`
}

// DefaultSettings are applied to every new site.
func DefaultSettings() Settings {
	return Settings{
		Colors: Colors{Primary: "#007bff", Secondary: "#6c757d"},
		Fonts:  Fonts{Heading: "sans-serif", Body: "sans-serif"},
	}
}

func (s Settings) Value() (driver.Value, error) {
	out, err := json.Marshal(s)
	return string(out), err
}

func (s *Settings) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = Settings{}
		return nil
	default:
		return fmt.Errorf("unsupported settings column type %T", value)
	}
}

type Site struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Name is the slug: lowercase, no whitespace, unique. It doubles as
	// the publish folder name under <SITES_DIR>/published.
	Name        string `gorm:"not null;uniqueIndex:idx_sites_name" json:"name"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	OwnerID uint   `gorm:"not null;index" json:"ownerId"`
	Status  string `gorm:"not null;default:'unpublished'" json:"status"`

	Settings Settings `gorm:"type:jsonb;not null;default:'{}'" json:"settings"`

	Pages []pages.Page `gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`

	// PageIDs mirrors the pages relation for API responses.
	PageIDs []string `gorm:"-" json:"pages"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

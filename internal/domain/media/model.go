package media

import "time"

type Media struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SiteID string `gorm:"type:uuid;not null;index" json:"siteId"`

	// Filename is the name the user uploaded; Filepath is where the file
	// lives under the upload root, e.g. /uploads/<siteId>/<uuid>-<name>.
	Filename string `gorm:"not null" json:"filename"`
	Filepath string `gorm:"not null" json:"filepath"`

	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`

	CreatedAt time.Time `json:"createdAt"`
}

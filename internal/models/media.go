package models

import "time"

// MediaURLPrefix is where uploaded files are served from.
const MediaURLPrefix = "/uploads/"

// Media is an uploaded file. It is created on its own and attached to a
// tweet later by id.
type Media struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Filename  string    `json:"filename" gorm:"size:120;not null"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// URL returns the public path of the stored file
func (m Media) URL() string {
	return MediaURLPrefix + m.Filename
}

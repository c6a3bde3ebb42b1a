package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtikelModel adalah artikel berita biasa (tanpa galeri), dengan penulis.
type ArtikelModel struct {
	ArtikelID       uuid.UUID `gorm:"column:artikel_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"artikel_id"`
	ArtikelTitle    string    `gorm:"column:artikel_title;type:varchar(255);not null" json:"artikel_title"`
	ArtikelSlug     string    `gorm:"column:artikel_slug;type:varchar(160);uniqueIndex;not null" json:"artikel_slug"`
	ArtikelCoverURL string    `gorm:"column:artikel_cover_url;type:text;not null" json:"artikel_cover_url"`
	ArtikelContent  string    `gorm:"column:artikel_content;type:text;not null" json:"artikel_content"`
	ArtikelAuthor   string    `gorm:"column:artikel_author;type:varchar(255);not null" json:"artikel_author"`

	ArtikelCreatedAt time.Time `gorm:"column:artikel_created_at;autoCreateTime;index" json:"artikel_created_at"`
	ArtikelUpdatedAt time.Time `gorm:"column:artikel_updated_at;autoUpdateTime" json:"artikel_updated_at"`
}

func (ArtikelModel) TableName() string {
	return "artikel"
}

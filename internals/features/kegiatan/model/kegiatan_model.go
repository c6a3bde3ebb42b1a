package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// KegiatanModel adalah artikel kegiatan: cover + galeri foto.
type KegiatanModel struct {
	KegiatanID       uuid.UUID      `gorm:"column:kegiatan_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"kegiatan_id"`
	KegiatanTitle    string         `gorm:"column:kegiatan_title;type:varchar(255);not null" json:"kegiatan_title"`
	KegiatanSlug     string         `gorm:"column:kegiatan_slug;type:varchar(160);uniqueIndex;not null" json:"kegiatan_slug"`
	KegiatanCoverURL string         `gorm:"column:kegiatan_cover_url;type:text;not null" json:"kegiatan_cover_url"`
	KegiatanImages   pq.StringArray `gorm:"column:kegiatan_images;type:text[]" json:"kegiatan_images"`
	KegiatanContent  string         `gorm:"column:kegiatan_content;type:text;not null" json:"kegiatan_content"`

	KegiatanCreatedAt time.Time `gorm:"column:kegiatan_created_at;autoCreateTime;index" json:"kegiatan_created_at"`
	KegiatanUpdatedAt time.Time `gorm:"column:kegiatan_updated_at;autoUpdateTime" json:"kegiatan_updated_at"`
}

func (KegiatanModel) TableName() string {
	return "kegiatan"
}

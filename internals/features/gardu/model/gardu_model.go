package model

import (
	"time"

	"github.com/google/uuid"
)

// ULTG yang dilayani UPT Tanjung Karang. Semua gardu disimpan di satu
// tabel dengan kolom diskriminator gardu_ultg.
var ValidULTG = map[string]bool{
	"tarahan":    true,
	"tegineneng": true,
	"pagelaran":  true,
	"kotabumi":   true,
}

type GarduModel struct {
	GarduID     uuid.UUID `gorm:"column:gardu_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"gardu_id"`
	GarduULTG   string    `gorm:"column:gardu_ultg;type:varchar(32);not null;uniqueIndex:uq_gardu_ultg_slug;index" json:"gardu_ultg"`
	GarduNamaGI string    `gorm:"column:gardu_namagi;type:varchar(255);not null" json:"gardu_namagi"`
	// Slug unik per ULTG, bukan global.
	GarduSlug      string `gorm:"column:gardu_slug;type:varchar(160);not null;uniqueIndex:uq_gardu_ultg_slug" json:"gardu_slug"`
	GarduImageURL  string `gorm:"column:gardu_image_url;type:text;not null" json:"gardu_image_url"`
	GarduAlamat    string `gorm:"column:gardu_alamat;type:text;not null" json:"gardu_alamat"`
	GarduMapsEmbed string `gorm:"column:gardu_maps_embed;type:text;not null" json:"gardu_maps_embed"`

	GarduCreatedAt time.Time `gorm:"column:gardu_created_at;autoCreateTime;index" json:"gardu_created_at"`
	GarduUpdatedAt time.Time `gorm:"column:gardu_updated_at;autoUpdateTime" json:"gardu_updated_at"`
}

func (GarduModel) TableName() string {
	return "gardu_induk"
}

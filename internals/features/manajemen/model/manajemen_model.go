package model

import (
	"time"

	"github.com/google/uuid"
)

// ManajemenSectionModel adalah satu bagian struktur organisasi,
// diidentifikasi anchor unik (dipakai deep-link halaman manajemen).
type ManajemenSectionModel struct {
	ManajemenSectionID         uuid.UUID `gorm:"column:manajemen_section_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"manajemen_section_id"`
	ManajemenSectionTitle      string    `gorm:"column:manajemen_section_title;type:varchar(255);not null" json:"manajemen_section_title"`
	ManajemenSectionAnchor     string    `gorm:"column:manajemen_section_anchor;type:varchar(100);uniqueIndex;not null" json:"manajemen_section_anchor"`
	ManajemenSectionOrderIndex int       `gorm:"column:manajemen_section_order_index;not null;default:0" json:"manajemen_section_order_index"`

	AssistantName     string `gorm:"column:manajemen_section_assistant_name;type:varchar(255)" json:"manajemen_section_assistant_name"`
	AssistantJabatan  string `gorm:"column:manajemen_section_assistant_jabatan;type:varchar(255)" json:"manajemen_section_assistant_jabatan"`
	AssistantImageURL string `gorm:"column:manajemen_section_assistant_image_url;type:text" json:"manajemen_section_assistant_image_url"`

	Persons []ManajemenPersonModel `gorm:"foreignKey:ManajemenPersonSectionID;references:ManajemenSectionID;constraint:OnDelete:CASCADE" json:"persons"`

	ManajemenSectionCreatedAt time.Time `gorm:"column:manajemen_section_created_at;autoCreateTime" json:"manajemen_section_created_at"`
	ManajemenSectionUpdatedAt time.Time `gorm:"column:manajemen_section_updated_at;autoUpdateTime" json:"manajemen_section_updated_at"`
}

func (ManajemenSectionModel) TableName() string {
	return "manajemen_sections"
}

// ManajemenPersonModel adalah satu orang dalam section, dengan posisi
// (container_group, person_index_in_group). Keunikan pasangan posisi per
// section dijamin oleh sinkronisasi full-state: posisi selalu diturunkan dari
// indeks array submission, jadi tidak bisa duplikat by construction.
// (Tanpa unique index DB supaya reorder dalam satu transaksi tidak bentrok
// dengan constraint non-deferrable.)
type ManajemenPersonModel struct {
	ManajemenPersonID        uuid.UUID `gorm:"column:manajemen_person_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"manajemen_person_id"`
	ManajemenPersonSectionID uuid.UUID `gorm:"column:manajemen_person_section_id;type:uuid;not null;index:idx_manajemen_person_slot,priority:1" json:"manajemen_person_section_id"`

	ManajemenPersonName     string `gorm:"column:manajemen_person_name;type:varchar(255);not null" json:"manajemen_person_name"`
	ManajemenPersonJabatan  string `gorm:"column:manajemen_person_jabatan;type:varchar(255)" json:"manajemen_person_jabatan"`
	ManajemenPersonImageURL string `gorm:"column:manajemen_person_image_url;type:text" json:"manajemen_person_image_url"`

	ContainerGroup     int `gorm:"column:manajemen_person_container_group;not null;index:idx_manajemen_person_slot,priority:2" json:"manajemen_person_container_group"`
	PersonIndexInGroup int `gorm:"column:manajemen_person_index_in_group;not null;index:idx_manajemen_person_slot,priority:3" json:"manajemen_person_index_in_group"`

	ManajemenPersonCreatedAt time.Time `gorm:"column:manajemen_person_created_at;autoCreateTime" json:"manajemen_person_created_at"`
	ManajemenPersonUpdatedAt time.Time `gorm:"column:manajemen_person_updated_at;autoUpdateTime" json:"manajemen_person_updated_at"`
}

func (ManajemenPersonModel) TableName() string {
	return "manajemen_persons"
}

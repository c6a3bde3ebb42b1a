package dto

import (
	"time"

	"github.com/google/uuid"

	"upttanjungkarang_backend/internals/features/gardu/model"
)

// ============================
// Request DTO
// ============================

type CreateGarduRequest struct {
	Type            string `json:"type" validate:"required"`
	NamaGI          string `json:"namagi" validate:"required,min=3"`
	Image           string `json:"image" validate:"required"` // data-URI
	Alamat          string `json:"alamat" validate:"required"`
	GoogleMapsEmbed string `json:"googleMapsEmbed" validate:"required"`
}

type UpdateGarduRequest struct {
	NamaGI          string `json:"namagi" validate:"required,min=3"`
	Image           string `json:"image"` // data-URI = ganti gambar
	Alamat          string `json:"alamat" validate:"required"`
	GoogleMapsEmbed string `json:"googleMapsEmbed" validate:"required"`
}

// ============================
// Response DTO
// ============================

type GarduDTO struct {
	ID              uuid.UUID `json:"id"`
	ULTG            string    `json:"ultg"`
	NamaGI          string    `json:"namagi"`
	Slug            string    `json:"slug"`
	Image           string    `json:"image"`
	Alamat          string    `json:"alamat"`
	GoogleMapsEmbed string    `json:"googleMapsEmbed"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type GarduListResponse struct {
	Data       []GarduDTO `json:"data"`
	NextCursor *string    `json:"next_cursor"`
}

func ToGarduDTO(m model.GarduModel) GarduDTO {
	return GarduDTO{
		ID:              m.GarduID,
		ULTG:            m.GarduULTG,
		NamaGI:          m.GarduNamaGI,
		Slug:            m.GarduSlug,
		Image:           m.GarduImageURL,
		Alamat:          m.GarduAlamat,
		GoogleMapsEmbed: m.GarduMapsEmbed,
		CreatedAt:       m.GarduCreatedAt,
		UpdatedAt:       m.GarduUpdatedAt,
	}
}

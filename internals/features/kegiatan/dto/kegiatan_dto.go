package dto

import (
	"time"

	"github.com/google/uuid"

	"upttanjungkarang_backend/internals/features/kegiatan/model"
)

// ============================
// Request DTO (wire camelCase, ikut frontend)
// ============================

type CreateKegiatanRequest struct {
	Title      string   `json:"title" validate:"required,min=3"`
	CoverImage string   `json:"coverImage" validate:"required"` // data-URI
	Images     []string `json:"image"`                          // galeri, data-URI per item
	Content    string   `json:"content" validate:"required"`
}

type UpdateKegiatanRequest struct {
	Title      string   `json:"title" validate:"required,min=3"`
	CoverImage string   `json:"coverImage"` // data-URI = ganti cover; selain itu dipertahankan
	Images     []string `json:"image"`      // non-kosong = ganti seluruh galeri
	Content    string   `json:"content" validate:"required"`
}

// ============================
// Response DTO
// ============================

type KegiatanDTO struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CoverImage string    `json:"coverImage"`
	Images     []string  `json:"image"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type KegiatanListResponse struct {
	Data       []KegiatanDTO `json:"data"`
	NextCursor *string       `json:"next_cursor"`
}

func ToKegiatanDTO(m model.KegiatanModel) KegiatanDTO {
	images := []string(m.KegiatanImages)
	if images == nil {
		images = []string{}
	}
	return KegiatanDTO{
		ID:         m.KegiatanID,
		Title:      m.KegiatanTitle,
		Slug:       m.KegiatanSlug,
		CoverImage: m.KegiatanCoverURL,
		Images:     images,
		Content:    m.KegiatanContent,
		CreatedAt:  m.KegiatanCreatedAt,
		UpdatedAt:  m.KegiatanUpdatedAt,
	}
}

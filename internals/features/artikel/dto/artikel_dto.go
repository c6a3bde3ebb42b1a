package dto

import (
	"time"

	"github.com/google/uuid"

	"upttanjungkarang_backend/internals/features/artikel/model"
)

// ============================
// Request DTO
// ============================

type CreateArtikelRequest struct {
	Title      string `json:"title" validate:"required,min=3"`
	CoverImage string `json:"coverImage" validate:"required"` // data-URI
	Content    string `json:"content" validate:"required"`
	Author     string `json:"author" validate:"required"`
}

type UpdateArtikelRequest struct {
	Title      string `json:"title" validate:"required,min=3"`
	CoverImage string `json:"coverImage"` // data-URI = ganti cover
	Content    string `json:"content" validate:"required"`
	Author     string `json:"author" validate:"required"`
}

// ============================
// Response DTO
// ============================

type ArtikelDTO struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CoverImage string    `json:"coverImage"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ArtikelListResponse struct {
	Data       []ArtikelDTO `json:"data"`
	NextCursor *string      `json:"next_cursor"`
}

func ToArtikelDTO(m model.ArtikelModel) ArtikelDTO {
	return ArtikelDTO{
		ID:         m.ArtikelID,
		Title:      m.ArtikelTitle,
		Slug:       m.ArtikelSlug,
		CoverImage: m.ArtikelCoverURL,
		Content:    m.ArtikelContent,
		Author:     m.ArtikelAuthor,
		CreatedAt:  m.ArtikelCreatedAt,
		UpdatedAt:  m.ArtikelUpdatedAt,
	}
}

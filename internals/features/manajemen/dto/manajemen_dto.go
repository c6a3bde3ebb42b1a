package dto

import (
	"github.com/google/uuid"

	helper "upttanjungkarang_backend/internals/helpers"
)

// ============================
// Request DTO (wire camelCase, ikut frontend)
// ============================

// PersonInput adalah satu orang di dalam containers submission.
// ImageURL: data-URI = upload baru, URL = pertahankan, null = hapus.
type PersonInput struct {
	ID       *uuid.UUID            `json:"id,omitempty"`
	Name     string                `json:"name" validate:"required"`
	Jabatan  string                `json:"jabatan"`
	ImageURL helper.NullableString `json:"imageUrl"`
}

type AssistantInput struct {
	Name    string                `json:"name"`
	Jabatan string                `json:"jabatan"`
	Image   helper.NullableString `json:"image"`
}

type CreateManajemenRequest struct {
	Title      string          `json:"title" validate:"required,min=3"`
	Anchor     string          `json:"anchor" validate:"required,min=2,max=100"`
	OrderIndex int             `json:"orderIndex"`
	Assistant  *AssistantInput `json:"assistant"`
	Containers [][]PersonInput `json:"containers" validate:"required"`
}

// UpdateManajemenRequest: field section yang nil tidak diubah
// (partial update); containers selalu full desired state.
type UpdateManajemenRequest struct {
	Title      *string         `json:"title"`
	OrderIndex *int            `json:"orderIndex"`
	Assistant  *AssistantInput `json:"assistant"`
	Containers [][]PersonInput `json:"containers" validate:"required"`
}

// ============================
// Response DTO
// ============================

type PersonDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Jabatan  string    `json:"jabatan"`
	ImageURL *string   `json:"imageUrl"`
}

type AssistantDTO struct {
	Name    string  `json:"name"`
	Jabatan string  `json:"jabatan"`
	Image   *string `json:"image"`
}

type ManajemenSectionDTO struct {
	ID         uuid.UUID     `json:"id"`
	Title      string        `json:"title"`
	Anchor     string        `json:"anchor"`
	OrderIndex int           `json:"orderIndex"`
	Assistant  *AssistantDTO `json:"assistant"`
	Containers [][]PersonDTO `json:"containers"`
}

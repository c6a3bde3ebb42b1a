package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/artikel/dto"
	"upttanjungkarang_backend/internals/features/artikel/model"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

var validateArtikel = validator.New()

type ArtikelController struct {
	DB    *gorm.DB
	Media helperOSS.MediaService
}

func NewArtikelController(db *gorm.DB, media helperOSS.MediaService) *ArtikelController {
	return &ArtikelController{DB: db, Media: media}
}

// =============================
// 📄 Get Artikel (single by slug, atau list cursor-paginated)
// =============================
func (ctrl *ArtikelController) GetArtikel(c *fiber.Ctx) error {
	if c.Query("mode") == "single" {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
		}

		var item model.ArtikelModel
		if err := ctrl.DB.WithContext(c.Context()).
			First(&item, "artikel_slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Artikel tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil artikel")
		}
		return c.JSON(dto.ToArtikelDTO(item))
	}

	params := helper.ParseCursor(c)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ArtikelModel{})
	if params.Cursor != "" {
		var cursorRow model.ArtikelModel
		if err := q.Session(&gorm.Session{}).
			First(&cursorRow, "artikel_id = ?", params.Cursor).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cursor tidak valid")
		}
		q = q.Where(
			"(artikel_created_at, artikel_id) < (?, ?)",
			cursorRow.ArtikelCreatedAt, cursorRow.ArtikelID,
		)
	}

	var items []model.ArtikelModel
	if err := q.
		Order("artikel_created_at DESC, artikel_id DESC").
		Limit(params.Limit + 1).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar artikel")
	}

	page, next := helper.CursorPage(items, params.Limit, func(m model.ArtikelModel) string {
		return m.ArtikelID.String()
	})

	result := make([]dto.ArtikelDTO, 0, len(page))
	for _, m := range page {
		result = append(result, dto.ToArtikelDTO(m))
	}
	return c.JSON(dto.ArtikelListResponse{Data: result, NextCursor: next})
}

// =============================
// ➕ Create Artikel
// =============================
func (ctrl *ArtikelController) CreateArtikel(c *fiber.Ctx) error {
	var body dto.CreateArtikelRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArtikel.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !helperOSS.IsDataURI(body.CoverImage) {
		return fiber.NewError(fiber.StatusBadRequest, "coverImage harus berupa data-URI gambar")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	coverURL, err := tracker.Upload(c.Context(), body.CoverImage, "artikel", body.Title)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:       "artikel",
		SlugColumn:  "artikel_slug",
		DefaultBase: "artikel",
	}, body.Title)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	item := model.ArtikelModel{
		ArtikelTitle:    body.Title,
		ArtikelSlug:     slug,
		ArtikelCoverURL: coverURL,
		ArtikelContent:  body.Content,
		ArtikelAuthor:   body.Author,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] create artikel '%s': %v", slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat artikel")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToArtikelDTO(item))
}

// =============================
// 🔄 Update Artikel
// =============================
func (ctrl *ArtikelController) UpdateArtikel(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var body dto.UpdateArtikelRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArtikel.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.ArtikelModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "artikel_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	// Cover hanya diganti kalau data-URI baru dikirim.
	coverURL := existing.ArtikelCoverURL
	if helperOSS.IsDataURI(body.CoverImage) {
		if existing.ArtikelCoverURL != "" {
			if err := ctrl.Media.DeleteByPublicURL(c.Context(), existing.ArtikelCoverURL); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		url, err := tracker.Upload(c.Context(), body.CoverImage, "artikel", body.Title)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		coverURL = url
	}

	newSlug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:         "artikel",
		SlugColumn:    "artikel_slug",
		DefaultBase:   "artikel",
		ExcludeColumn: "artikel_id",
		ExcludeID:     existing.ArtikelID,
	}, body.Title)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	updates := map[string]any{
		"artikel_title":     body.Title,
		"artikel_slug":      newSlug,
		"artikel_cover_url": coverURL,
		"artikel_content":   body.Content,
		"artikel_author":    body.Author,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ArtikelModel{}).
		Where("artikel_id = ?", existing.ArtikelID).
		Updates(updates).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] update artikel '%s': %v", slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui artikel")
	}

	var fresh model.ArtikelModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "artikel_id = ?", existing.ArtikelID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat ulang artikel")
	}
	return c.JSON(dto.ToArtikelDTO(fresh))
}

// =============================
// 🗑️ Delete Artikel (beserta cover di media store)
// =============================
func (ctrl *ArtikelController) DeleteArtikel(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var existing model.ArtikelModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "artikel_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	if existing.ArtikelCoverURL != "" {
		if err := ctrl.Media.DeleteByPublicURL(c.Context(), existing.ArtikelCoverURL); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.ArtikelModel{}, "artikel_id = ?", existing.ArtikelID).Error; err != nil {
		log.Printf("[WARN] delete artikel '%s' gagal; cover sudah terlanjur dihapus", slug)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}

	return c.JSON(fiber.Map{"message": "Artikel berhasil dihapus"})
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/kegiatan/dto"
	"upttanjungkarang_backend/internals/features/kegiatan/model"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

var validateKegiatan = validator.New()

type KegiatanController struct {
	DB    *gorm.DB
	Media helperOSS.MediaService
}

func NewKegiatanController(db *gorm.DB, media helperOSS.MediaService) *KegiatanController {
	return &KegiatanController{DB: db, Media: media}
}

// =============================
// 📄 Get Kegiatan (single by slug, atau list cursor-paginated)
// =============================
func (ctrl *KegiatanController) GetKegiatan(c *fiber.Ctx) error {
	if c.Query("mode") == "single" {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
		}

		var item model.KegiatanModel
		if err := ctrl.DB.WithContext(c.Context()).
			First(&item, "kegiatan_slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kegiatan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
		}
		return c.JSON(dto.ToKegiatanDTO(item))
	}

	params := helper.ParseCursor(c)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.KegiatanModel{})
	if params.Cursor != "" {
		var cursorRow model.KegiatanModel
		if err := q.Session(&gorm.Session{}).
			First(&cursorRow, "kegiatan_id = ?", params.Cursor).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cursor tidak valid")
		}
		q = q.Where(
			"(kegiatan_created_at, kegiatan_id) < (?, ?)",
			cursorRow.KegiatanCreatedAt, cursorRow.KegiatanID,
		)
	}

	var items []model.KegiatanModel
	if err := q.
		Order("kegiatan_created_at DESC, kegiatan_id DESC").
		Limit(params.Limit + 1).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kegiatan")
	}

	page, next := helper.CursorPage(items, params.Limit, func(m model.KegiatanModel) string {
		return m.KegiatanID.String()
	})

	result := make([]dto.KegiatanDTO, 0, len(page))
	for _, m := range page {
		result = append(result, dto.ToKegiatanDTO(m))
	}
	return c.JSON(dto.KegiatanListResponse{Data: result, NextCursor: next})
}

// =============================
// ➕ Create Kegiatan
// =============================
func (ctrl *KegiatanController) CreateKegiatan(c *fiber.Ctx) error {
	var body dto.CreateKegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !helperOSS.IsDataURI(body.CoverImage) {
		return fiber.NewError(fiber.StatusBadRequest, "coverImage harus berupa data-URI gambar")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	coverURL, err := tracker.Upload(c.Context(), body.CoverImage, "kegiatan", body.Title)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	galleryURLs := make([]string, 0, len(body.Images))
	for _, img := range body.Images {
		url, err := tracker.Upload(c.Context(), img, "kegiatan", body.Title)
		if err != nil {
			tracker.CleanupOrphans(c.Context())
			return helper.FromFiberError(c, err)
		}
		galleryURLs = append(galleryURLs, url)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:       "kegiatan",
		SlugColumn:  "kegiatan_slug",
		DefaultBase: "kegiatan",
	}, body.Title)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	item := model.KegiatanModel{
		KegiatanTitle:    body.Title,
		KegiatanSlug:     slug,
		KegiatanCoverURL: coverURL,
		KegiatanImages:   pq.StringArray(galleryURLs),
		KegiatanContent:  body.Content,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] create kegiatan '%s': %v", slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kegiatan")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToKegiatanDTO(item))
}

// =============================
// 🔄 Update Kegiatan
// =============================
func (ctrl *KegiatanController) UpdateKegiatan(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var body dto.UpdateKegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.KegiatanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "kegiatan_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	// Cover hanya diganti kalau data-URI baru dikirim.
	coverURL := existing.KegiatanCoverURL
	if helperOSS.IsDataURI(body.CoverImage) {
		if existing.KegiatanCoverURL != "" {
			if err := ctrl.Media.DeleteByPublicURL(c.Context(), existing.KegiatanCoverURL); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		url, err := tracker.Upload(c.Context(), body.CoverImage, "kegiatan", body.Title)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		coverURL = url
	}

	// Galeri diganti seluruhnya kalau ada payload baru.
	galleryURLs := []string(existing.KegiatanImages)
	if len(body.Images) > 0 {
		for _, old := range existing.KegiatanImages {
			if err := ctrl.Media.DeleteByPublicURL(c.Context(), old); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		galleryURLs = make([]string, 0, len(body.Images))
		for _, img := range body.Images {
			url, err := tracker.Upload(c.Context(), img, "kegiatan", body.Title)
			if err != nil {
				tracker.CleanupOrphans(c.Context())
				return helper.FromFiberError(c, err)
			}
			galleryURLs = append(galleryURLs, url)
		}
	}

	// Slug mengikuti judul baru, tetap unik di luar row sendiri.
	newSlug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:         "kegiatan",
		SlugColumn:    "kegiatan_slug",
		DefaultBase:   "kegiatan",
		ExcludeColumn: "kegiatan_id",
		ExcludeID:     existing.KegiatanID,
	}, body.Title)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	updates := map[string]any{
		"kegiatan_title":     body.Title,
		"kegiatan_slug":      newSlug,
		"kegiatan_cover_url": coverURL,
		"kegiatan_images":    pq.StringArray(galleryURLs),
		"kegiatan_content":   body.Content,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.KegiatanModel{}).
		Where("kegiatan_id = ?", existing.KegiatanID).
		Updates(updates).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] update kegiatan '%s': %v", slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kegiatan")
	}

	var fresh model.KegiatanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "kegiatan_id = ?", existing.KegiatanID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat ulang kegiatan")
	}
	return c.JSON(dto.ToKegiatanDTO(fresh))
}

// =============================
// 🗑️ Delete Kegiatan (beserta cover + galeri di media store)
// =============================
func (ctrl *KegiatanController) DeleteKegiatan(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var existing model.KegiatanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "kegiatan_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}

	urls := make([]string, 0, len(existing.KegiatanImages)+1)
	if existing.KegiatanCoverURL != "" {
		urls = append(urls, existing.KegiatanCoverURL)
	}
	urls = append(urls, existing.KegiatanImages...)
	for _, u := range urls {
		if err := ctrl.Media.DeleteByPublicURL(c.Context(), u); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.KegiatanModel{}, "kegiatan_id = ?", existing.KegiatanID).Error; err != nil {
		log.Printf("[WARN] delete kegiatan '%s' gagal; gambar sudah terlanjur dihapus", slug)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kegiatan")
	}

	return c.JSON(fiber.Map{"message": "Kegiatan berhasil dihapus"})
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/gardu/dto"
	"upttanjungkarang_backend/internals/features/gardu/model"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

var validateGardu = validator.New()

type GarduController struct {
	DB    *gorm.DB
	Media helperOSS.MediaService
}

func NewGarduController(db *gorm.DB, media helperOSS.MediaService) *GarduController {
	return &GarduController{DB: db, Media: media}
}

func requireULTG(raw string) (string, error) {
	ultg := strings.ToLower(strings.TrimSpace(raw))
	if ultg == "" {
		return "", fiber.NewError(fiber.StatusBadRequest,
			"Parameter type wajib diisi (tarahan, tegineneng, pagelaran, kotabumi)")
	}
	if !model.ValidULTG[ultg] {
		return "", fiber.NewError(fiber.StatusBadRequest, "Tipe ULTG tidak valid: "+ultg)
	}
	return ultg, nil
}

// =============================
// 📄 Get Gardu (single by slug per ULTG, atau list cursor-paginated per ULTG)
// =============================
func (ctrl *GarduController) GetGardu(c *fiber.Ctx) error {
	ultg, err := requireULTG(c.Query("type"))
	if err != nil {
		return err
	}

	if c.Query("mode") == "single" {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
		}

		var item model.GarduModel
		if err := ctrl.DB.WithContext(c.Context()).
			First(&item, "gardu_ultg = ? AND gardu_slug = ?", ultg, slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gardu induk tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gardu induk")
		}
		return c.JSON(dto.ToGarduDTO(item))
	}

	params := helper.ParseCursor(c)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.GarduModel{}).
		Where("gardu_ultg = ?", ultg)
	if params.Cursor != "" {
		var cursorRow model.GarduModel
		if err := ctrl.DB.WithContext(c.Context()).
			First(&cursorRow, "gardu_id = ?", params.Cursor).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cursor tidak valid")
		}
		q = q.Where(
			"(gardu_created_at, gardu_id) < (?, ?)",
			cursorRow.GarduCreatedAt, cursorRow.GarduID,
		)
	}

	var items []model.GarduModel
	if err := q.
		Order("gardu_created_at DESC, gardu_id DESC").
		Limit(params.Limit + 1).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar gardu induk")
	}

	page, next := helper.CursorPage(items, params.Limit, func(m model.GarduModel) string {
		return m.GarduID.String()
	})

	result := make([]dto.GarduDTO, 0, len(page))
	for _, m := range page {
		result = append(result, dto.ToGarduDTO(m))
	}
	return c.JSON(dto.GarduListResponse{Data: result, NextCursor: next})
}

// =============================
// ➕ Create Gardu
// =============================
func (ctrl *GarduController) CreateGardu(c *fiber.Ctx) error {
	var body dto.CreateGarduRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGardu.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	ultg, err := requireULTG(body.Type)
	if err != nil {
		return err
	}
	if !helperOSS.IsDataURI(body.Image) {
		return fiber.NewError(fiber.StatusBadRequest, "image harus berupa data-URI gambar")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	imageURL, err := tracker.Upload(c.Context(), body.Image, "gardu/"+ultg, body.NamaGI)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Slug cukup unik di dalam ULTG yang sama.
	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:       "gardu_induk",
		SlugColumn:  "gardu_slug",
		Filters:     map[string]any{"gardu_ultg": ultg},
		DefaultBase: "gardu",
	}, body.NamaGI)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	item := model.GarduModel{
		GarduULTG:      ultg,
		GarduNamaGI:    body.NamaGI,
		GarduSlug:      slug,
		GarduImageURL:  imageURL,
		GarduAlamat:    body.Alamat,
		GarduMapsEmbed: body.GoogleMapsEmbed,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] create gardu %s/%s: %v", ultg, slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat gardu induk")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToGarduDTO(item))
}

// =============================
// 🔄 Update Gardu
// =============================
func (ctrl *GarduController) UpdateGardu(c *fiber.Ctx) error {
	ultg, err := requireULTG(c.Query("type"))
	if err != nil {
		return err
	}
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var body dto.UpdateGarduRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGardu.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.GarduModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "gardu_ultg = ? AND gardu_slug = ?", ultg, slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gardu induk tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gardu induk")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	// Gambar hanya diganti kalau data-URI baru dikirim.
	imageURL := existing.GarduImageURL
	if helperOSS.IsDataURI(body.Image) {
		if existing.GarduImageURL != "" {
			if err := ctrl.Media.DeleteByPublicURL(c.Context(), existing.GarduImageURL); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		url, err := tracker.Upload(c.Context(), body.Image, "gardu/"+ultg, body.NamaGI)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		imageURL = url
	}

	newSlug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:         "gardu_induk",
		SlugColumn:    "gardu_slug",
		Filters:       map[string]any{"gardu_ultg": ultg},
		DefaultBase:   "gardu",
		ExcludeColumn: "gardu_id",
		ExcludeID:     existing.GarduID,
	}, body.NamaGI)
	if err != nil {
		tracker.CleanupOrphans(c.Context())
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate slug")
	}

	updates := map[string]any{
		"gardu_namagi":     body.NamaGI,
		"gardu_slug":       newSlug,
		"gardu_image_url":  imageURL,
		"gardu_alamat":     body.Alamat,
		"gardu_maps_embed": body.GoogleMapsEmbed,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.GarduModel{}).
		Where("gardu_id = ?", existing.GarduID).
		Updates(updates).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		log.Printf("[ERROR] update gardu %s/%s: %v", ultg, slug, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui gardu induk")
	}

	var fresh model.GarduModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&fresh, "gardu_id = ?", existing.GarduID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat ulang gardu induk")
	}
	return c.JSON(dto.ToGarduDTO(fresh))
}

// =============================
// 🗑️ Delete Gardu (beserta gambar di media store)
// =============================
func (ctrl *GarduController) DeleteGardu(c *fiber.Ctx) error {
	ultg, err := requireULTG(c.Query("type"))
	if err != nil {
		return err
	}
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter slug wajib diisi")
	}

	var existing model.GarduModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "gardu_ultg = ? AND gardu_slug = ?", ultg, slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gardu induk tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gardu induk")
	}

	if existing.GarduImageURL != "" {
		if err := ctrl.Media.DeleteByPublicURL(c.Context(), existing.GarduImageURL); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.GarduModel{}, "gardu_id = ?", existing.GarduID).Error; err != nil {
		log.Printf("[WARN] delete gardu %s/%s gagal; gambar sudah terlanjur dihapus", ultg, slug)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus gardu induk")
	}

	return c.JSON(fiber.Map{"message": "Gardu induk berhasil dihapus"})
}

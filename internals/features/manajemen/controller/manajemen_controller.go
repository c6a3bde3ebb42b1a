package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/manajemen/dto"
	"upttanjungkarang_backend/internals/features/manajemen/model"
	"upttanjungkarang_backend/internals/features/manajemen/service"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

var validateManajemen = validator.New()

type ManajemenController struct {
	DB    *gorm.DB
	Media helperOSS.MediaService
	Sync  *service.Synchronizer
}

func NewManajemenController(db *gorm.DB, media helperOSS.MediaService) *ManajemenController {
	return &ManajemenController{
		DB:    db,
		Media: media,
		Sync:  service.NewSynchronizer(db, media),
	}
}

func orderedPersons(db *gorm.DB) *gorm.DB {
	return db.Order("manajemen_person_container_group ASC, manajemen_person_index_in_group ASC")
}

// isDuplicateKeyError mengenali pelanggaran unique constraint (race antara
// precheck anchor dan insert) supaya bisa dipetakan ke 409.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// =============================
// 📄 Get Manajemen (single by anchor, atau semua)
// =============================
func (ctrl *ManajemenController) GetManajemen(c *fiber.Ctx) error {
	anchor := strings.TrimSpace(c.Query("anchor"))

	if anchor != "" {
		var section model.ManajemenSectionModel
		if err := ctrl.DB.WithContext(c.Context()).
			Preload("Persons", orderedPersons).
			First(&section, "manajemen_section_anchor = ?", anchor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Section dengan anchor '"+anchor+"' tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil struktur manajemen")
		}
		return c.JSON(service.ReconstructSection(section))
	}

	var sections []model.ManajemenSectionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Persons", orderedPersons).
		Order("manajemen_section_order_index ASC").
		Find(&sections).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil struktur manajemen")
	}

	result := make([]dto.ManajemenSectionDTO, 0, len(sections))
	for _, s := range sections {
		result = append(result, service.ReconstructSection(s))
	}
	return c.JSON(result)
}

// =============================
// ➕ Create Manajemen Section
// =============================
func (ctrl *ManajemenController) CreateManajemen(c *fiber.Ctx) error {
	var body dto.CreateManajemenRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateManajemen.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	anchor := strings.TrimSpace(body.Anchor)

	// Anchor harus unik. Cek dulu supaya tidak ada side effect saat conflict.
	var cnt int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ManajemenSectionModel{}).
		Where("manajemen_section_anchor = ?", anchor).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek anchor")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Section dengan anchor '"+anchor+"' sudah ada")
	}

	tracker := helperOSS.NewUploadTracker(ctrl.Media)

	// Assistant (opsional)
	var assistantName, assistantJabatan, assistantImage string
	if body.Assistant != nil {
		assistantName = body.Assistant.Name
		assistantJabatan = body.Assistant.Jabatan
		if img := body.Assistant.Image; img.Set && img.Valid && strings.TrimSpace(img.Value) != "" {
			val := strings.TrimSpace(img.Value)
			if helperOSS.IsDataURI(val) {
				url, err := tracker.Upload(c.Context(), val, "manajemen/assistants", anchor+"-assistant")
				if err != nil {
					return helper.FromFiberError(c, err)
				}
				assistantImage = url
			} else {
				assistantImage = val
			}
		}
	}

	// Person: flatten + resolusi gambar sebelum transaksi dibuka.
	flat := service.Flatten(body.Containers)
	rows := make([]model.ManajemenPersonModel, 0, len(flat))
	for _, p := range flat {
		var imageURL string
		if p.Image.Set && p.Image.Valid && strings.TrimSpace(p.Image.Value) != "" {
			val := strings.TrimSpace(p.Image.Value)
			if helperOSS.IsDataURI(val) {
				url, err := tracker.Upload(c.Context(), val, "manajemen/"+anchor, p.Name)
				if err != nil {
					return helper.FromFiberError(c, err)
				}
				imageURL = url
			} else {
				imageURL = val
			}
		}
		rows = append(rows, model.ManajemenPersonModel{
			ManajemenPersonName:     p.Name,
			ManajemenPersonJabatan:  p.Jabatan,
			ManajemenPersonImageURL: imageURL,
			ContainerGroup:          p.ContainerGroup,
			PersonIndexInGroup:      p.PersonIndexInGroup,
		})
	}

	section := model.ManajemenSectionModel{
		ManajemenSectionTitle:      body.Title,
		ManajemenSectionAnchor:     anchor,
		ManajemenSectionOrderIndex: body.OrderIndex,
		AssistantName:              assistantName,
		AssistantJabatan:           assistantJabatan,
		AssistantImageURL:          assistantImage,
		Persons:                    rows,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&section).Error; err != nil {
		tracker.CleanupOrphans(c.Context())
		if isDuplicateKeyError(err) {
			return fiber.NewError(fiber.StatusConflict, "Section dengan anchor '"+anchor+"' sudah ada")
		}
		log.Printf("[ERROR] create manajemen '%s': %v", anchor, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat section manajemen")
	}

	return c.Status(fiber.StatusCreated).JSON(service.ReconstructSection(section))
}

// =============================
// 🔄 Update Manajemen Section (sinkronisasi diff-based)
// =============================
func (ctrl *ManajemenController) UpdateManajemen(c *fiber.Ctx) error {
	anchor := strings.TrimSpace(c.Query("anchor"))
	if anchor == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter anchor wajib diisi")
	}

	var body dto.UpdateManajemenRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateManajemen.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Sync.Synchronize(c.Context(), anchor, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(result)
}

// =============================
// 🗑️ Delete Manajemen Section (cascade person + gambar)
// =============================
func (ctrl *ManajemenController) DeleteManajemen(c *fiber.Ctx) error {
	anchor := strings.TrimSpace(c.Query("anchor"))
	if anchor == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter anchor wajib diisi")
	}

	var section model.ManajemenSectionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Persons").
		First(&section, "manajemen_section_anchor = ?", anchor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section dengan anchor '"+anchor+"' tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil section")
	}

	// Semua gambar milik section ikut dihapus dari media store.
	if err := service.DeleteSectionImages(c.Context(), ctrl.Media, section); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ManajemenPersonModel{}, "manajemen_person_section_id = ?", section.ManajemenSectionID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus person")
		}
		if err := tx.Delete(&model.ManajemenSectionModel{}, "manajemen_section_id = ?", section.ManajemenSectionID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus section")
		}
		return nil
	}); err != nil {
		log.Printf("[WARN] delete manajemen '%s' rollback; gambar sudah terlanjur dihapus dari media store", anchor)
		return helper.FromFiberError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Section manajemen '" + anchor + "' berhasil dihapus",
	})
}

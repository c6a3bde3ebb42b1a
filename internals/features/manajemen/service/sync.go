package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/manajemen/dto"
	"upttanjungkarang_backend/internals/features/manajemen/model"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// PersonUpdate memasangkan row existing dengan desired state-nya.
type PersonUpdate struct {
	Existing model.ManajemenPersonModel
	Desired  FlatPerson
	// ResolvedImageURL diisi pada fase resolusi gambar, sebelum transaksi.
	ResolvedImageURL string
}

// Unchanged menilai apakah update ini no-op: semua field desired (termasuk
// gambar hasil resolusi) sama dengan row tersimpan, jadi tidak perlu UPDATE.
func (u PersonUpdate) Unchanged() bool {
	return u.Desired.Name == u.Existing.ManajemenPersonName &&
		u.Desired.Jabatan == u.Existing.ManajemenPersonJabatan &&
		u.ResolvedImageURL == u.Existing.ManajemenPersonImageURL &&
		u.Desired.ContainerGroup == u.Existing.ContainerGroup &&
		u.Desired.PersonIndexInGroup == u.Existing.PersonIndexInGroup
}

// PersonCreate adalah desired entry baru beserta URL gambar hasil resolusi.
type PersonCreate struct {
	Desired          FlatPerson
	ResolvedImageURL string
}

// SyncPlan adalah hasil diff identitas antara state tersimpan dan submission.
type SyncPlan struct {
	Deletes []model.ManajemenPersonModel
	Updates []PersonUpdate
	Creates []PersonCreate
}

// BuildSyncPlan menghitung create/update/delete murni dari identitas:
//   - desired ber-ID yang cocok dengan existing  -> update
//   - desired tanpa ID (atau ID tak dikenal)     -> create
//   - existing yang ID-nya absen dari submission -> delete
func BuildSyncPlan(existing []model.ManajemenPersonModel, desired []FlatPerson) SyncPlan {
	byID := make(map[uuid.UUID]model.ManajemenPersonModel, len(existing))
	for _, p := range existing {
		byID[p.ManajemenPersonID] = p
	}

	var plan SyncPlan
	seen := make(map[uuid.UUID]bool, len(desired))

	for _, d := range desired {
		if d.ID != nil {
			if ex, ok := byID[*d.ID]; ok {
				seen[*d.ID] = true
				plan.Updates = append(plan.Updates, PersonUpdate{Existing: ex, Desired: d})
				continue
			}
		}
		plan.Creates = append(plan.Creates, PersonCreate{Desired: d})
	}

	for _, p := range existing {
		if !seen[p.ManajemenPersonID] {
			plan.Deletes = append(plan.Deletes, p)
		}
	}
	return plan
}

// Synchronizer menerapkan submission bersarang ke state tersimpan satu
// section dalam satu transaksi DB. Semua side effect media store dijalankan
// sebelum transaksi dibuka; upload yang yatim karena rollback dibersihkan
// best-effort.
type Synchronizer struct {
	DB    *gorm.DB
	Media helperOSS.MediaService
}

func NewSynchronizer(db *gorm.DB, media helperOSS.MediaService) *Synchronizer {
	return &Synchronizer{DB: db, Media: media}
}

// resolveImage menerapkan aturan resolusi gambar wire:
// absen = pertahankan old; data-URI = hapus old lalu upload baru;
// URL non-kosong = pass-through; null/kosong = hapus old, kosongkan field.
func (s *Synchronizer) resolveImage(ctx context.Context, tracker *helperOSS.UploadTracker, in helper.NullableString, old, dir, nameHint string) (string, error) {
	if !in.Set {
		return old, nil
	}
	if in.Valid {
		val := strings.TrimSpace(in.Value)
		if helperOSS.IsDataURI(val) {
			if old != "" {
				if err := s.Media.DeleteByPublicURL(ctx, old); err != nil {
					return "", err
				}
			}
			return tracker.Upload(ctx, val, dir, nameHint)
		}
		if val != "" {
			return val, nil
		}
	}
	// null eksplisit (atau string kosong): bersihkan
	if old != "" {
		if err := s.Media.DeleteByPublicURL(ctx, old); err != nil {
			return "", err
		}
	}
	return "", nil
}

// Synchronize menjalankan algoritma sinkronisasi penuh untuk satu anchor.
// Urutan operasi: resolusi gambar assistant -> diff person -> cleanup gambar
// person terhapus -> resolusi gambar upsert -> transaksi DB (delete, update,
// create, field section) -> rekonstruksi response dari state segar.
func (s *Synchronizer) Synchronize(ctx context.Context, anchor string, req dto.UpdateManajemenRequest) (dto.ManajemenSectionDTO, error) {
	var section model.ManajemenSectionModel
	if err := s.DB.WithContext(ctx).
		Preload("Persons").
		First(&section, "manajemen_section_anchor = ?", anchor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ManajemenSectionDTO{}, fiber.NewError(fiber.StatusNotFound, "Section dengan anchor '"+anchor+"' tidak ditemukan")
		}
		return dto.ManajemenSectionDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil section")
	}

	tracker := helperOSS.NewUploadTracker(s.Media)

	// 1) Assistant: field nil dipertahankan (partial update).
	assistantName := section.AssistantName
	assistantJabatan := section.AssistantJabatan
	assistantImage := section.AssistantImageURL
	if req.Assistant != nil {
		assistantName = req.Assistant.Name
		assistantJabatan = req.Assistant.Jabatan
		resolved, err := s.resolveImage(ctx, tracker, req.Assistant.Image, section.AssistantImageURL, "manajemen/assistants", anchor+"-assistant")
		if err != nil {
			return dto.ManajemenSectionDTO{}, err
		}
		assistantImage = resolved
	}

	// 2) Diff person by identity.
	desired := Flatten(req.Containers)
	plan := BuildSyncPlan(section.Persons, desired)

	// 3) Gambar person yang akan dihapus dibersihkan dulu dari media store.
	for _, del := range plan.Deletes {
		if del.ManajemenPersonImageURL == "" {
			continue
		}
		if err := s.Media.DeleteByPublicURL(ctx, del.ManajemenPersonImageURL); err != nil {
			return dto.ManajemenSectionDTO{}, err
		}
	}

	// 4) Resolusi gambar semua upsert, masih sebelum transaksi dibuka.
	for i := range plan.Updates {
		u := &plan.Updates[i]
		resolved, err := s.resolveImage(ctx, tracker, u.Desired.Image, u.Existing.ManajemenPersonImageURL,
			"manajemen/"+anchor, u.Desired.Name)
		if err != nil {
			return dto.ManajemenSectionDTO{}, err
		}
		u.ResolvedImageURL = resolved
	}
	for i := range plan.Creates {
		c := &plan.Creates[i]
		resolved, err := s.resolveImage(ctx, tracker, c.Desired.Image, "", "manajemen/"+anchor, c.Desired.Name)
		if err != nil {
			return dto.ManajemenSectionDTO{}, err
		}
		c.ResolvedImageURL = resolved
	}

	// 5) Satu transaksi untuk semua mutasi DB.
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(plan.Deletes) > 0 {
			ids := make([]uuid.UUID, 0, len(plan.Deletes))
			for _, d := range plan.Deletes {
				ids = append(ids, d.ManajemenPersonID)
			}
			if err := tx.Delete(&model.ManajemenPersonModel{}, "manajemen_person_id IN ?", ids).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus person")
			}
		}

		for _, u := range plan.Updates {
			if u.Unchanged() {
				continue
			}
			updates := map[string]any{
				"manajemen_person_name":            u.Desired.Name,
				"manajemen_person_jabatan":         u.Desired.Jabatan,
				"manajemen_person_image_url":       u.ResolvedImageURL,
				"manajemen_person_container_group": u.Desired.ContainerGroup,
				"manajemen_person_index_in_group":  u.Desired.PersonIndexInGroup,
			}
			if err := tx.Model(&model.ManajemenPersonModel{}).
				Where("manajemen_person_id = ?", u.Existing.ManajemenPersonID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui person")
			}
		}

		if len(plan.Creates) > 0 {
			rows := make([]model.ManajemenPersonModel, 0, len(plan.Creates))
			for _, c := range plan.Creates {
				rows = append(rows, model.ManajemenPersonModel{
					ManajemenPersonSectionID: section.ManajemenSectionID,
					ManajemenPersonName:      c.Desired.Name,
					ManajemenPersonJabatan:   c.Desired.Jabatan,
					ManajemenPersonImageURL:  c.ResolvedImageURL,
					ContainerGroup:           c.Desired.ContainerGroup,
					PersonIndexInGroup:       c.Desired.PersonIndexInGroup,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat person baru")
			}
		}

		sectionUpdates := map[string]any{
			"manajemen_section_assistant_name":      assistantName,
			"manajemen_section_assistant_jabatan":   assistantJabatan,
			"manajemen_section_assistant_image_url": assistantImage,
		}
		if req.Title != nil {
			sectionUpdates["manajemen_section_title"] = *req.Title
		}
		if req.OrderIndex != nil {
			sectionUpdates["manajemen_section_order_index"] = *req.OrderIndex
		}
		if err := tx.Model(&model.ManajemenSectionModel{}).
			Where("manajemen_section_id = ?", section.ManajemenSectionID).
			Updates(sectionUpdates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui section")
		}
		return nil
	})
	if txErr != nil {
		// Upload request ini jadi yatim; bersihkan best-effort. Gambar lama
		// yang sudah terlanjur dihapus dari media store tidak bisa
		// dikembalikan, cukup dicatat di log.
		tracker.CleanupOrphans(ctx)
		log.Printf("[WARN] sinkronisasi manajemen '%s' rollback; kemungkinan ada referensi gambar usang", anchor)
		return dto.ManajemenSectionDTO{}, txErr
	}

	// 6) Response dari state yang baru tersimpan.
	var fresh model.ManajemenSectionModel
	if err := s.DB.WithContext(ctx).
		Preload("Persons", func(db *gorm.DB) *gorm.DB {
			return db.Order("manajemen_person_container_group ASC, manajemen_person_index_in_group ASC")
		}).
		First(&fresh, "manajemen_section_id = ?", section.ManajemenSectionID).Error; err != nil {
		return dto.ManajemenSectionDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat ulang section")
	}
	return ReconstructSection(fresh), nil
}

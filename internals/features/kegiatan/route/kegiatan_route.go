package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/kegiatan/controller"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// KegiatanPublicRoutes: baca kegiatan tanpa token.
func KegiatanPublicRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewKegiatanController(db, media)

	kegiatan := api.Group("/kegiatan")
	kegiatan.Get("/", ctrl.GetKegiatan) // 📄 single (?mode=single&slug=) atau list cursor
}

// KegiatanAdminRoutes: mutasi kegiatan (token admin).
func KegiatanAdminRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewKegiatanController(db, media)

	kegiatan := api.Group("/kegiatan")
	kegiatan.Post("/", ctrl.CreateKegiatan)   // ➕ Buat kegiatan baru
	kegiatan.Put("/", ctrl.UpdateKegiatan)    // 🔄 Perbarui kegiatan (?slug=)
	kegiatan.Delete("/", ctrl.DeleteKegiatan) // 🗑️ Hapus kegiatan (?slug=)
}

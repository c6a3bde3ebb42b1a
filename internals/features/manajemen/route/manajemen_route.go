package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/manajemen/controller"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// ManajemenPublicRoutes: baca struktur manajemen tanpa token.
func ManajemenPublicRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewManajemenController(db, media)

	manajemen := api.Group("/manajemen")
	manajemen.Get("/", ctrl.GetManajemen) // 📄 single (?anchor=) atau semua
}

// ManajemenAdminRoutes: mutasi struktur manajemen (token admin).
func ManajemenAdminRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewManajemenController(db, media)

	manajemen := api.Group("/manajemen")
	manajemen.Post("/", ctrl.CreateManajemen)   // ➕ Buat section baru
	manajemen.Put("/", ctrl.UpdateManajemen)    // 🔄 Sinkronisasi section (?anchor=)
	manajemen.Delete("/", ctrl.DeleteManajemen) // 🗑️ Hapus section (?anchor=)
}

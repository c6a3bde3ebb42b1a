package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/artikel/controller"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// ArtikelPublicRoutes: baca artikel tanpa token.
func ArtikelPublicRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewArtikelController(db, media)

	artikel := api.Group("/articles")
	artikel.Get("/", ctrl.GetArtikel) // 📄 single (?mode=single&slug=) atau list cursor
}

// ArtikelAdminRoutes: mutasi artikel (token admin).
func ArtikelAdminRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewArtikelController(db, media)

	artikel := api.Group("/articles")
	artikel.Post("/", ctrl.CreateArtikel)   // ➕ Buat artikel baru
	artikel.Put("/", ctrl.UpdateArtikel)    // 🔄 Perbarui artikel (?slug=)
	artikel.Delete("/", ctrl.DeleteArtikel) // 🗑️ Hapus artikel (?slug=)
}

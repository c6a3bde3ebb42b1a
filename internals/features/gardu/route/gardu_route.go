package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/gardu/controller"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// GarduPublicRoutes: baca gardu induk tanpa token.
func GarduPublicRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewGarduController(db, media)

	gardu := api.Group("/gardu")
	gardu.Get("/", ctrl.GetGardu) // 📄 single (?type=&mode=single&slug=) atau list per ULTG
}

// GarduAdminRoutes: mutasi gardu induk (token admin).
func GarduAdminRoutes(api fiber.Router, db *gorm.DB, media helperOSS.MediaService) {
	ctrl := controller.NewGarduController(db, media)

	gardu := api.Group("/gardu")
	gardu.Post("/", ctrl.CreateGardu)   // ➕ Buat gardu induk baru (type di body)
	gardu.Put("/", ctrl.UpdateGardu)    // 🔄 Perbarui gardu induk (?type=&slug=)
	gardu.Delete("/", ctrl.DeleteGardu) // 🗑️ Hapus gardu induk (?type=&slug=)
}

package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artikelRoute "upttanjungkarang_backend/internals/features/artikel/route"
	authRoute "upttanjungkarang_backend/internals/features/auth/route"
	garduRoute "upttanjungkarang_backend/internals/features/gardu/route"
	kegiatanRoute "upttanjungkarang_backend/internals/features/kegiatan/route"
	manajemenRoute "upttanjungkarang_backend/internals/features/manajemen/route"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
	authMiddleware "upttanjungkarang_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi:
//   - /api/public : baca konten tanpa token
//   - /api/auth   : login admin
//   - /api/a      : mutasi konten, wajib JWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	media, err := helperOSS.NewOSSMediaServiceFromEnv("uploads")
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi media storage: %v", err)
	}

	api := app.Group("/api")

	// =====================
	// 🌐 PUBLIC
	// =====================
	public := api.Group("/public")
	kegiatanRoute.KegiatanPublicRoutes(public, db, media)
	artikelRoute.ArtikelPublicRoutes(public, db, media)
	garduRoute.GarduPublicRoutes(public, db, media)
	manajemenRoute.ManajemenPublicRoutes(public, db, media)

	// =====================
	// 🔐 AUTH
	// =====================
	auth := api.Group("/auth")
	authRoute.AuthRoutes(auth, db)

	// =====================
	// 🛠️ ADMIN (JWT)
	// =====================
	admin := api.Group("/a", authMiddleware.AuthMiddleware())
	kegiatanRoute.KegiatanAdminRoutes(admin, db, media)
	artikelRoute.ArtikelAdminRoutes(admin, db, media)
	garduRoute.GarduAdminRoutes(admin, db, media)
	manajemenRoute.ManajemenAdminRoutes(admin, db, media)
}

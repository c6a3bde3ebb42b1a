package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/features/auth/controller"
	"upttanjungkarang_backend/internals/middlewares"
)

// AuthRoutes: endpoint login, dibatasi rate limiter khusus.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login) // 🔐 Login admin
}

package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/configs"
	"upttanjungkarang_backend/internals/features/auth/dto"
	"upttanjungkarang_backend/internals/features/auth/model"
	helper "upttanjungkarang_backend/internals/helpers"
)

var validateAuth = validator.New()

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login (email + password -> JWT)
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Pesan sama dengan password salah, jangan bocorkan keberadaan akun.
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.UserPassword), []byte(body.Password),
	); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	if configs.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET kosong saat login")
		return fiber.NewError(fiber.StatusInternalServerError, "Konfigurasi server belum lengkap")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_name": user.UserUsername,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] sign token untuk %s: %v", email, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		User: dto.LoginUserDTO{
			ID:       user.UserID,
			Username: user.UserUsername,
			Email:    user.UserEmail,
		},
	})
}

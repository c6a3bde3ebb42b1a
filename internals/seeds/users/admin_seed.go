package users

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/configs"
	"upttanjungkarang_backend/internals/features/auth/model"
)

// SeedAdminUser membuat akun admin pertama dari ENV
// (ADMIN_EMAIL, ADMIN_USERNAME, ADMIN_PASSWORD). Idempoten:
// kalau email sudah terdaftar, tidak melakukan apa-apa.
func SeedAdminUser(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL")))
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⏭️ ADMIN_EMAIL/ADMIN_PASSWORD kosong, skip seed admin")
		return nil
	}

	var cnt int64
	if err := db.Model(&model.UserModel{}).
		Where("user_email = ?", email).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.UserModel{
		UserUsername: configs.GetEnv("ADMIN_USERNAME", "admin"),
		UserEmail:    email,
		UserPassword: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin user '%s' dibuat.", email)
	return nil
}

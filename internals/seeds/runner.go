package seeds

import (
	"log"

	"gorm.io/gorm"

	"upttanjungkarang_backend/internals/seeds/users"
)

// RunAllSeeds menjalankan seluruh seeder idempoten saat boot.
func RunAllSeeds(db *gorm.DB) {
	if err := users.SeedAdminUser(db); err != nil {
		log.Printf("[WARN] seed admin user: %v", err)
	}
}

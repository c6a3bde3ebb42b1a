package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserUsername string    `gorm:"column:user_username;type:varchar(100);not null" json:"user_username"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	// Hash bcrypt, tidak pernah dikirim keluar.
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

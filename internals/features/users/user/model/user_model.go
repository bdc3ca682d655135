package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex" json:"user_name"`
	UserPassword string `gorm:"column:user_password;type:varchar(250);not null" json:"-"`

	// admin | staff
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'staff'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClerkModel = panitera pengganti (PP)
type ClerkModel struct {
	ClerkID uuid.UUID `gorm:"column:clerk_id;type:uuid;default:gen_random_uuid();primaryKey" json:"clerk_id"`

	ClerkName string `gorm:"column:clerk_name;type:varchar(150);not null" json:"clerk_name"`

	// Ejaan alternatif pada data historis (hasil input manual bertahun-tahun)
	ClerkAliases pq.StringArray `gorm:"column:clerk_aliases;type:text[]" json:"clerk_aliases"`

	ClerkIsActive bool   `gorm:"column:clerk_is_active;not null;default:true" json:"clerk_is_active"`
	ClerkNote     string `gorm:"column:clerk_note;type:text" json:"clerk_note"`

	ClerkCreatedAt time.Time `gorm:"column:clerk_created_at;autoCreateTime" json:"clerk_created_at"`
	ClerkUpdatedAt time.Time `gorm:"column:clerk_updated_at;autoUpdateTime" json:"clerk_updated_at"`
}

func (ClerkModel) TableName() string {
	return "clerks"
}

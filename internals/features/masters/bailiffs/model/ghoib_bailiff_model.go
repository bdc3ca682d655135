package model

import (
	"time"

	"github.com/google/uuid"
)

// GhoibBailiffModel = pool jurusita khusus perkara ghoib.
// Counter kumulatif disimpan di sini (bukan diturunkan dari riwayat) dan
// bertambah satu setiap kali jurusita ini terpilih untuk perkara ghoib.
type GhoibBailiffModel struct {
	GhoibBailiffID uuid.UUID `gorm:"column:ghoib_bailiff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ghoib_bailiff_id"`

	GhoibBailiffName    string `gorm:"column:ghoib_bailiff_name;type:varchar(150);not null" json:"ghoib_bailiff_name"`
	GhoibBailiffCounter int    `gorm:"column:ghoib_bailiff_counter;not null;default:0" json:"ghoib_bailiff_counter"`

	GhoibBailiffIsActive bool `gorm:"column:ghoib_bailiff_is_active;not null;default:true" json:"ghoib_bailiff_is_active"`

	GhoibBailiffCreatedAt time.Time `gorm:"column:ghoib_bailiff_created_at;autoCreateTime" json:"ghoib_bailiff_created_at"`
	GhoibBailiffUpdatedAt time.Time `gorm:"column:ghoib_bailiff_updated_at;autoUpdateTime" json:"ghoib_bailiff_updated_at"`
}

func (GhoibBailiffModel) TableName() string {
	return "ghoib_bailiffs"
}

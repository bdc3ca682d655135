package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BailiffModel = jurusita / jurusita pengganti
type BailiffModel struct {
	BailiffID uuid.UUID `gorm:"column:bailiff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bailiff_id"`

	BailiffName string `gorm:"column:bailiff_name;type:varchar(150);not null" json:"bailiff_name"`

	// Ejaan alternatif pada data historis
	BailiffAliases pq.StringArray `gorm:"column:bailiff_aliases;type:text[]" json:"bailiff_aliases"`

	BailiffIsActive bool   `gorm:"column:bailiff_is_active;not null;default:true" json:"bailiff_is_active"`
	BailiffNote     string `gorm:"column:bailiff_note;type:text" json:"bailiff_note"`

	BailiffCreatedAt time.Time `gorm:"column:bailiff_created_at;autoCreateTime" json:"bailiff_created_at"`
	BailiffUpdatedAt time.Time `gorm:"column:bailiff_updated_at;autoUpdateTime" json:"bailiff_updated_at"`
}

func (BailiffModel) TableName() string {
	return "bailiffs"
}

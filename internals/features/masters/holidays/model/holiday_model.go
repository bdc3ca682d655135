package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HolidayModel = daftar blokir tanggal untuk penetapan hari sidang
type HolidayModel struct {
	HolidayID uuid.UUID `gorm:"column:holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"holiday_id"`

	HolidayDate        datatypes.Date `gorm:"column:holiday_date;type:date;not null;uniqueIndex" json:"holiday_date"`
	HolidayDescription string         `gorm:"column:holiday_description;type:varchar(200)" json:"holiday_description"`

	HolidayCreatedAt time.Time `gorm:"column:holiday_created_at;autoCreateTime" json:"holiday_created_at"`
	HolidayUpdatedAt time.Time `gorm:"column:holiday_updated_at;autoUpdateTime" json:"holiday_updated_at"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}

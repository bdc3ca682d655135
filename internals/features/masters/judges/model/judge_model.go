package model

import (
	"time"

	"github.com/google/uuid"
)

type JudgeModel struct {
	JudgeID uuid.UUID `gorm:"column:judge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"judge_id"`

	JudgeName string `gorm:"column:judge_name;type:varchar(150);not null" json:"judge_name"`

	// Hari sidang ISO (1=Senin .. 7=Minggu), 0 = belum ditetapkan
	JudgeSittingDay int `gorm:"column:judge_sitting_day;not null;default:0" json:"judge_sitting_day"`

	// Kapasitas perkara per hari sidang (opsional)
	JudgeDailyCap *int `gorm:"column:judge_daily_cap" json:"judge_daily_cap,omitempty"`

	// Urutan SK kepaniteraan, dipakai sebagai tie-break pemilihan ketua majelis
	JudgeRosterIndex int `gorm:"column:judge_roster_index;not null;default:0" json:"judge_roster_index"`

	JudgeIsActive bool   `gorm:"column:judge_is_active;not null;default:true" json:"judge_is_active"`
	JudgeNote     string `gorm:"column:judge_note;type:text" json:"judge_note"`

	JudgeCreatedAt time.Time `gorm:"column:judge_created_at;autoCreateTime" json:"judge_created_at"`
	JudgeUpdatedAt time.Time `gorm:"column:judge_updated_at;autoUpdateTime" json:"judge_updated_at"`
}

// TableName sets the name of the table
func (JudgeModel) TableName() string {
	return "judges"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RotationCursorModel = posisi kursor mode round-robin per majelis.
// Ditulis sekali tiap save perkara, dibaca lagi hanya untuk melanjutkan siklus.
type RotationCursorModel struct {
	CursorID uuid.UUID `gorm:"column:cursor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cursor_id"`

	CursorKey      string `gorm:"column:cursor_key;type:varchar(80);not null;uniqueIndex" json:"cursor_key"`
	CursorPosition int    `gorm:"column:cursor_position;not null;default:0" json:"cursor_position"`

	CursorUpdatedAt time.Time `gorm:"column:cursor_updated_at;autoUpdateTime" json:"cursor_updated_at"`
}

func (RotationCursorModel) TableName() string {
	return "rotation_cursors"
}

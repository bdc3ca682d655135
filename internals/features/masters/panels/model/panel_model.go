package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PanelModel = satu baris SK Majelis: ketua terikat dua anggota tetap
// plus kandidat panitera pengganti & jurusita untuk rotasi.
type PanelModel struct {
	PanelID uuid.UUID `gorm:"column:panel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"panel_id"`

	PanelChamberIndex int    `gorm:"column:panel_chamber_index;not null;default:0" json:"panel_chamber_index"`
	PanelChamberLabel string `gorm:"column:panel_chamber_label;type:varchar(50);not null" json:"panel_chamber_label"`

	PanelPresidingName  string `gorm:"column:panel_presiding_name;type:varchar(150);not null" json:"panel_presiding_name"`
	PanelAssociate1Name string `gorm:"column:panel_associate1_name;type:varchar(150);not null" json:"panel_associate1_name"`
	PanelAssociate2Name string `gorm:"column:panel_associate2_name;type:varchar(150);not null" json:"panel_associate2_name"`

	// Maksimal dua kandidat per pool (sesuai format SK)
	PanelClerkPool   pq.StringArray `gorm:"column:panel_clerk_pool;type:text[]" json:"panel_clerk_pool"`
	PanelBailiffPool pq.StringArray `gorm:"column:panel_bailiff_pool;type:text[]" json:"panel_bailiff_pool"`

	PanelIsActive bool `gorm:"column:panel_is_active;not null;default:true" json:"panel_is_active"`

	PanelCreatedAt time.Time `gorm:"column:panel_created_at;autoCreateTime" json:"panel_created_at"`
	PanelUpdatedAt time.Time `gorm:"column:panel_updated_at;autoUpdateTime" json:"panel_updated_at"`
}

func (PanelModel) TableName() string {
	return "panels"
}

package dto

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/model"
)

type PanelDTO struct {
	PanelID             string    `json:"panel_id"`
	PanelChamberIndex   int       `json:"panel_chamber_index"`
	PanelChamberLabel   string    `json:"panel_chamber_label"`
	PanelPresidingName  string    `json:"panel_presiding_name"`
	PanelAssociate1Name string    `json:"panel_associate1_name"`
	PanelAssociate2Name string    `json:"panel_associate2_name"`
	PanelClerkPool      []string  `json:"panel_clerk_pool"`
	PanelBailiffPool    []string  `json:"panel_bailiff_pool"`
	PanelIsActive       bool      `json:"panel_is_active"`
	PanelCreatedAt      time.Time `json:"panel_created_at"`
}

type CreatePanelRequest struct {
	PanelChamberIndex   int      `json:"panel_chamber_index" validate:"min=0"`
	PanelChamberLabel   string   `json:"panel_chamber_label" validate:"required,max=50"`
	PanelPresidingName  string   `json:"panel_presiding_name" validate:"required,min=3,max=150"`
	PanelAssociate1Name string   `json:"panel_associate1_name" validate:"required,min=3,max=150"`
	PanelAssociate2Name string   `json:"panel_associate2_name" validate:"required,min=3,max=150"`
	PanelClerkPool      []string `json:"panel_clerk_pool" validate:"max=2,dive,min=3"`
	PanelBailiffPool    []string `json:"panel_bailiff_pool" validate:"max=2,dive,min=3"`
	PanelIsActive       *bool    `json:"panel_is_active"`
}

type UpdatePanelRequest struct {
	PanelChamberIndex   *int     `json:"panel_chamber_index" validate:"omitempty,min=0"`
	PanelChamberLabel   *string  `json:"panel_chamber_label" validate:"omitempty,max=50"`
	PanelPresidingName  *string  `json:"panel_presiding_name" validate:"omitempty,min=3,max=150"`
	PanelAssociate1Name *string  `json:"panel_associate1_name" validate:"omitempty,min=3,max=150"`
	PanelAssociate2Name *string  `json:"panel_associate2_name" validate:"omitempty,min=3,max=150"`
	PanelClerkPool      []string `json:"panel_clerk_pool" validate:"omitempty,max=2,dive,min=3"`
	PanelBailiffPool    []string `json:"panel_bailiff_pool" validate:"omitempty,max=2,dive,min=3"`
	PanelIsActive       *bool    `json:"panel_is_active"`
}

func ToPanelDTO(m model.PanelModel) PanelDTO {
	return PanelDTO{
		PanelID:             m.PanelID.String(),
		PanelChamberIndex:   m.PanelChamberIndex,
		PanelChamberLabel:   m.PanelChamberLabel,
		PanelPresidingName:  m.PanelPresidingName,
		PanelAssociate1Name: m.PanelAssociate1Name,
		PanelAssociate2Name: m.PanelAssociate2Name,
		PanelClerkPool:      m.PanelClerkPool,
		PanelBailiffPool:    m.PanelBailiffPool,
		PanelIsActive:       m.PanelIsActive,
		PanelCreatedAt:      m.PanelCreatedAt,
	}
}

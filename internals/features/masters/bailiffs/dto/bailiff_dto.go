package dto

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
)

type BailiffDTO struct {
	BailiffID        string    `json:"bailiff_id"`
	BailiffName      string    `json:"bailiff_name"`
	BailiffAliases   []string  `json:"bailiff_aliases"`
	BailiffIsActive  bool      `json:"bailiff_is_active"`
	BailiffNote      string    `json:"bailiff_note"`
	BailiffCreatedAt time.Time `json:"bailiff_created_at"`
}

type CreateBailiffRequest struct {
	BailiffName     string   `json:"bailiff_name" validate:"required,min=3,max=150"`
	BailiffAliases  []string `json:"bailiff_aliases" validate:"dive,min=3"`
	BailiffIsActive *bool    `json:"bailiff_is_active"`
	BailiffNote     string   `json:"bailiff_note"`
}

type UpdateBailiffRequest struct {
	BailiffName     *string  `json:"bailiff_name" validate:"omitempty,min=3,max=150"`
	BailiffAliases  []string `json:"bailiff_aliases" validate:"omitempty,dive,min=3"`
	BailiffIsActive *bool    `json:"bailiff_is_active"`
	BailiffNote     *string  `json:"bailiff_note"`
}

func ToBailiffDTO(m model.BailiffModel) BailiffDTO {
	return BailiffDTO{
		BailiffID:        m.BailiffID.String(),
		BailiffName:      m.BailiffName,
		BailiffAliases:   m.BailiffAliases,
		BailiffIsActive:  m.BailiffIsActive,
		BailiffNote:      m.BailiffNote,
		BailiffCreatedAt: m.BailiffCreatedAt,
	}
}

// ============================
// Pool jurusita ghoib
// ============================

type GhoibBailiffDTO struct {
	GhoibBailiffID       string    `json:"ghoib_bailiff_id"`
	GhoibBailiffName     string    `json:"ghoib_bailiff_name"`
	GhoibBailiffCounter  int       `json:"ghoib_bailiff_counter"`
	GhoibBailiffIsActive bool      `json:"ghoib_bailiff_is_active"`
	GhoibBailiffCreated  time.Time `json:"ghoib_bailiff_created_at"`
}

type CreateGhoibBailiffRequest struct {
	GhoibBailiffName     string `json:"ghoib_bailiff_name" validate:"required,min=3,max=150"`
	GhoibBailiffCounter  int    `json:"ghoib_bailiff_counter" validate:"min=0"`
	GhoibBailiffIsActive *bool  `json:"ghoib_bailiff_is_active"`
}

type UpdateGhoibBailiffRequest struct {
	GhoibBailiffName     *string `json:"ghoib_bailiff_name" validate:"omitempty,min=3,max=150"`
	GhoibBailiffCounter  *int    `json:"ghoib_bailiff_counter" validate:"omitempty,min=0"`
	GhoibBailiffIsActive *bool   `json:"ghoib_bailiff_is_active"`
}

func ToGhoibBailiffDTO(m model.GhoibBailiffModel) GhoibBailiffDTO {
	return GhoibBailiffDTO{
		GhoibBailiffID:       m.GhoibBailiffID.String(),
		GhoibBailiffName:     m.GhoibBailiffName,
		GhoibBailiffCounter:  m.GhoibBailiffCounter,
		GhoibBailiffIsActive: m.GhoibBailiffIsActive,
		GhoibBailiffCreated:  m.GhoibBailiffCreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/model"
)

type ClerkDTO struct {
	ClerkID        string    `json:"clerk_id"`
	ClerkName      string    `json:"clerk_name"`
	ClerkAliases   []string  `json:"clerk_aliases"`
	ClerkIsActive  bool      `json:"clerk_is_active"`
	ClerkNote      string    `json:"clerk_note"`
	ClerkCreatedAt time.Time `json:"clerk_created_at"`
}

type CreateClerkRequest struct {
	ClerkName     string   `json:"clerk_name" validate:"required,min=3,max=150"`
	ClerkAliases  []string `json:"clerk_aliases" validate:"dive,min=3"`
	ClerkIsActive *bool    `json:"clerk_is_active"`
	ClerkNote     string   `json:"clerk_note"`
}

type UpdateClerkRequest struct {
	ClerkName     *string  `json:"clerk_name" validate:"omitempty,min=3,max=150"`
	ClerkAliases  []string `json:"clerk_aliases" validate:"omitempty,dive,min=3"`
	ClerkIsActive *bool    `json:"clerk_is_active"`
	ClerkNote     *string  `json:"clerk_note"`
}

func ToClerkDTO(m model.ClerkModel) ClerkDTO {
	return ClerkDTO{
		ClerkID:        m.ClerkID.String(),
		ClerkName:      m.ClerkName,
		ClerkAliases:   m.ClerkAliases,
		ClerkIsActive:  m.ClerkIsActive,
		ClerkNote:      m.ClerkNote,
		ClerkCreatedAt: m.ClerkCreatedAt,
	}
}

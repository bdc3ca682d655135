package dto

import "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/users/user/model"

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	UserRole string `json:"user_role" validate:"omitempty,oneof=admin staff"`
}

type UserDTO struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserRole     string `json:"user_role"`
	UserIsActive bool   `json:"user_is_active"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:       m.UserID.String(),
		UserName:     m.UserName,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
	}
}

package userservice

import "assetflow/models"

type RegisterReq struct {
	Username   string  `json:"username" validate:"required,min=3,max=80"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	Department *string `json:"department,omitempty"`
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRes struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         models.Identity `json:"user"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshRes struct {
	AccessToken string `json:"access_token"`
}

type UpdateProfileReq struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Department *string `json:"department,omitempty"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type UpdateUserReq struct {
	Role       *models.Role `json:"role,omitempty"`
	Department *string      `json:"department,omitempty"`
	Email      *string      `json:"email,omitempty" validate:"omitempty,email"`
	IsActive   *bool        `json:"is_active,omitempty"`
}

// UserFilter narrows GET /users/.
type UserFilter struct {
	Role       string
	Department string
	IsActive   *bool
	Search     string
	Limit      int
	Offset     int
}

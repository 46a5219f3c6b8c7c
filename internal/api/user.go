package api

import "trainease/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"2"`
	Username string `json:"username" example:"alice"`
	FullName string `json:"fullName" example:"Alice Liddell"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
}

// swagger:model api.UpdateUserRoleRequest
type UpdateUserRoleRequest struct {
	IsAdmin *bool `json:"isAdmin" validate:"required" example:"true"`
}

// NewUserResponse strips the credential from u.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin,
	}
}

package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64" example:"alice"`
	Password string `json:"password" validate:"required,min=6,max=128" example:"pw123456"`
	FullName string `json:"fullName" validate:"required,max=128" example:"Alice Liddell"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"pw123456"`
}

package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Code    string         `json:"code" example:"FORBIDDEN"`
	Message string         `json:"message" example:"admin privileges required"`
	Details map[string]any `json:"details,omitempty"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

package api

// swagger:model api.CreateTrainRequest
type CreateTrainRequest struct {
	Name     string `json:"name" validate:"required,max=128" example:"Express 101"`
	Capacity int    `json:"capacity" validate:"required,gt=0" example:"200"`
	Type     string `json:"type" validate:"required,max=64" example:"Express"`
}

// UpdateTrainRequest carries a partial update; nil fields are left unchanged.
// swagger:model api.UpdateTrainRequest
type UpdateTrainRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=128" example:"Express 102"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0" example:"220"`
	Type     *string `json:"type" validate:"omitempty,min=1,max=64" example:"Express"`
}

package api

// swagger:model api.CreateRouteRequest
type CreateRouteRequest struct {
	Origin        string   `json:"origin" validate:"required,max=128" example:"New York"`
	Destination   string   `json:"destination" validate:"required,max=128,nefield=Origin" example:"Boston"`
	Duration      int      `json:"duration" validate:"required,gt=0" example:"240"`
	DepartureTime string   `json:"departureTime" validate:"omitempty,max=16" example:"09:00 AM"`
	ArrivalTime   string   `json:"arrivalTime" validate:"omitempty,max=16" example:"01:00 PM"`
	Price         *float64 `json:"price" validate:"required,gte=0" example:"45.99"`
}

// UpdateRouteRequest carries a partial update; nil fields are left unchanged.
// swagger:model api.UpdateRouteRequest
type UpdateRouteRequest struct {
	Origin        *string  `json:"origin" validate:"omitempty,min=1,max=128"`
	Destination   *string  `json:"destination" validate:"omitempty,min=1,max=128"`
	Duration      *int     `json:"duration" validate:"omitempty,gt=0"`
	DepartureTime *string  `json:"departureTime" validate:"omitempty,min=1,max=16"`
	ArrivalTime   *string  `json:"arrivalTime" validate:"omitempty,min=1,max=16"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
}

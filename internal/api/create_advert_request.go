package api

// swagger:model api.CreateAdvertRequest
type CreateAdvertRequest struct {
	Title  string `json:"title" validate:"required,max=64" example:"Bike"`
	Text   string `json:"text" validate:"required,max=256" example:"For sale"`
	UserID *int   `json:"user_id" validate:"omitempty,gt=0" example:"1"`
}

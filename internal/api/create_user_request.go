package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=64" example:"alice"`
	Email    string `json:"email" validate:"required,email,max=120" example:"a@x.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

package api

// swagger:model api.DeleteAdvertResponse
type DeleteAdvertResponse struct {
	DeletedID int `json:"Deleted ID" example:"1"`
}

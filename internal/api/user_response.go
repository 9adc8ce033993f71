package api

// swagger:model api.UserResponse
// 欄位順序即列表端點的文件化欄位順序: id, username, email
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"a@x.com"`
}

package api

// swagger:model api.AdvertResponse
// 欄位順序即列表端點的文件化欄位順序: id, title, text, owner, timestamp
type AdvertResponse struct {
	ID        int    `json:"id" example:"1"`
	Title     string `json:"title" example:"Bike"`
	Text      string `json:"text" example:"For sale"`
	Owner     *int   `json:"owner" example:"1"`
	Timestamp string `json:"timestamp" example:"2025-05-01T15:04:05Z"`
}

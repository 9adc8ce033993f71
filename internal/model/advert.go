// File: internal/model/advert.go
package model

// Advert 的 CreatedAt 以 RFC3339 UTC 字串儲存，JSON 欄位名為 timestamp
type Advert struct {
	ID        int    `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Text      string `db:"text" json:"text"`
	Owner     *int   `db:"owner" json:"owner"`
	CreatedAt string `db:"created_at" json:"timestamp"`
}

package store

import (
	"context"
	"time"

	"adboard/internal/database"
	"adboard/internal/model"
)

// 測試可覆寫
var now = time.Now

func CreateAdvert(ctx context.Context, db database.DB, a *model.Advert) (*model.Advert, error) {
	// 建立時間由此層設定，不依賴資料庫預設值
	a.CreatedAt = now().UTC().Format(time.RFC3339)
	row := db.QueryRow(ctx,
		`INSERT INTO adverts (title, text, created_at, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		a.Title,
		a.Text,
		a.CreatedAt,
		a.Owner,
	)
	if err := row.Scan(&a.ID); err != nil {
		return nil, classify("CreateAdvert", err)
	}
	return a, nil
}

func GetAdvertByID(ctx context.Context, db database.DB, advertID int) (*model.Advert, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, text, owner, created_at
		 FROM adverts WHERE id = $1`,
		advertID,
	)
	a := &model.Advert{}
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Text,
		&a.Owner,
		&a.CreatedAt,
	); err != nil {
		return nil, classify("GetAdvertByID", err)
	}
	return a, nil
}

// DeleteAdvert 刪除廣告並回傳被刪除的 id，查無資料時回傳 ErrNotFound
func DeleteAdvert(ctx context.Context, db database.DB, advertID int) (int, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM adverts WHERE id = $1
		 RETURNING id`,
		advertID,
	)
	var deleted int
	if err := row.Scan(&deleted); err != nil {
		return 0, classify("DeleteAdvert", err)
	}
	return deleted, nil
}

// ListAdverts 回傳所有廣告，欄位順序為 id, title, text, owner, created_at
func ListAdverts(ctx context.Context, db database.DB) ([]model.Advert, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, text, owner, created_at
		 FROM adverts ORDER BY id`,
	)
	if err != nil {
		return nil, classify("ListAdverts", err)
	}
	defer rows.Close()

	adverts := []model.Advert{}
	for rows.Next() {
		var a model.Advert
		if err := rows.Scan(&a.ID, &a.Title, &a.Text, &a.Owner, &a.CreatedAt); err != nil {
			return nil, classify("ListAdverts", err)
		}
		adverts = append(adverts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("ListAdverts", err)
	}
	return adverts, nil
}

package store

import (
	"context"

	"adboard/internal/database"
	"adboard/internal/model"
)

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Username,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, classify("CreateUser", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, password_hash
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
	); err != nil {
		return nil, classify("GetUserByID", err)
	}
	return u, nil
}

// ListUsers 回傳所有使用者，欄位順序為 id, username, email（不含密碼哈希）
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, username, email
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, classify("ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, classify("ListUsers", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("ListUsers", err)
	}
	return users, nil
}

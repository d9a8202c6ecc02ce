package user

import (
	"context"

	"gorm.io/gorm"
)

type storeService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) Service {
	return &storeService{db: db}
}

func (s *storeService) GetUser(ctx context.Context, id string) (*User, error) {
	rows, err := s.db.WithContext(ctx).
		Raw(`SELECT * FROM sp_get_user_by_id(?)`, id).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var u User
	if err := rows.Scan(&u.ID, &u.Name, &u.Role); err != nil {
		return nil, err
	}
	return &u, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/userdirectory/internal/model"
)

var _ model.SeedStore = (*SeedRepository)(nil)

type SeedRepository struct {
	db *Connection
}

func NewSeedRepository(db *Connection) *SeedRepository {
	return &SeedRepository{
		db: db,
	}
}

func (r *SeedRepository) ListSeedUsers(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, name, email FROM users ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seed users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan seed user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seed users: %w", err)
	}

	return users, nil
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// ListWithCV returns the users the scoring and lettering stages iterate
// over. Users without a CV path are invisible to the pipeline.
func (s *UserStore) ListWithCV(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.db.SelectContext(ctx, &users, `
		SELECT id, name, email, cv_path
		FROM users
		WHERE cv_path != ''
		ORDER BY id`)
	return users, err
}

func (s *UserStore) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		`SELECT id, name, email, cv_path FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

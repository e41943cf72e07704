package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, github_login, username, name, email, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID,
		u.GitHubLogin,
		u.Username,
		u.Name,
		u.Email,
		u.AvatarURL,
		u.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrUsernameTaken
		}

		log.Printf("user insert failed: %v", err)
		return err
	}

	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, github_login, username, name, email, avatar_url, created_at
		FROM users
		WHERE username = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&u.ID,
		&u.GitHubLogin,
		&u.Username,
		&u.Name,
		&u.Email,
		&u.AvatarURL,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, github_login, username, name, email, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.GitHubLogin,
		&u.Username,
		&u.Name,
		&u.Email,
		&u.AvatarURL,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &u, nil
}

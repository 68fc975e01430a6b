package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"lightbnb/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	userColumns = `id, name, email, password`

	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = $1`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	insertUserSQL        = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING ` + userColumns
)

// GetByEmail fetches a user by email, ignoring case. Returns ErrNotFound if
// no user matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	email = normalizeEmail(email)
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return models.User{}, fmt.Errorf("select user %q: %w", email, classify(err))
	}
	return u, nil
}

// GetByID fetches a user by id. Returns ErrNotFound if no user matches.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return models.User{}, fmt.Errorf("select user %d: %w", id, classify(err))
	}
	return u, nil
}

// Create inserts a user and returns the stored row with its generated id.
// A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, in models.NewUser) (models.User, error) {
	email := normalizeEmail(in.Email)
	u, err := scanUser(r.db.QueryRowContext(ctx, insertUserSQL, in.Name, email, in.Password))
	if err != nil {
		return models.User{}, fmt.Errorf("insert user %q: %w", email, classify(err))
	}
	return u, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	return u, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

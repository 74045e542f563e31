package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/legally-ai/legally/internal/domain"
)

// UserRepository handles user persistence
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns domain.ErrUserExists when the
// username is already taken.
func (r *UserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
	`, user.Username, user.PasswordHash, user.CreatedAt)

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrUserExists
	}
	return err
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when the
// user does not exist.
func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(`
		SELECT username, password_hash, created_at
		FROM users WHERE username = ?
	`, username).Scan(&user.Username, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user. Issued tokens for the account become unusable
// because the session guard re-checks account existence per request.
func (r *UserRepository) Delete(username string) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE username = ?`, username)
	return err
}

// Count returns the total number of registered users
func (r *UserRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

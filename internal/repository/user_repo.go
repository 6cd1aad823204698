package repository

import (
	"database/sql"
	"fmt"

	"github.com/justjelku/wordle-clone/internal/database"
	"github.com/justjelku/wordle-clone/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user into the database
func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, username, created_at)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, user.ID, user.Username, user.CreatedAt)
	if err != nil {
		if r.db.Dialect.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id = ?
	`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE username = ?
	`
	return r.scanUser(r.db.QueryRow(query, username))
}

// ListUsers retrieves all users
func (r *UserRepository) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

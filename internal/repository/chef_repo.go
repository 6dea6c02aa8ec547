package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"pixel_bistro/internal/models"
)

type ChefRepository struct {
	db *sql.DB
}

func NewChefRepository(db *sql.DB) *ChefRepository {
	return &ChefRepository{db: db}
}

var _ Authorization = (*ChefRepository)(nil)

const (
	insertChefSQL           = `INSERT INTO chefs (username, password_hash) VALUES (?, ?)`
	selectChefByUsernameSQL = `SELECT id, username, password_hash FROM chefs WHERE username = ?`
)

// Create inserts a chef account and returns its id.
func (r *ChefRepository) Create(username, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertChefSQL, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert chef %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for chef %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername returns (nil, nil) when no such chef exists.
func (r *ChefRepository) GetByUsername(username string) (*models.Chef, error) {
	var c models.Chef
	err := r.db.QueryRow(selectChefByUsernameSQL, username).Scan(&c.ID, &c.Username, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select chef %q: %w", username, err)
	}
	return &c, nil
}

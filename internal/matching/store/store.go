package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCategory(ctx context.Context, itemName string) (string, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE $1 ILIKE '%' || name_pattern || '%'
		ORDER BY LENGTH(name_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, itemName).Scan(&category)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return category, nil
}

func (s *Store) CreateMapping(ctx context.Context, namePattern string, category lineitem.Category) error {
	query := `
		INSERT INTO category_mappings (name_pattern, category, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, namePattern, category)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}

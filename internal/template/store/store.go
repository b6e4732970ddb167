package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/template"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTemplateColumns = `
	id, name, kind, description, is_default, is_active, created_at
`

func scanTemplate(s scanner) (*template.Template, error) {
	var tmpl template.Template

	var kind string

	var description sql.NullString

	if err := s.Scan(
		&tmpl.ID, &tmpl.Name, &kind, &description,
		&tmpl.IsDefault, &tmpl.IsActive, &tmpl.CreatedAt,
	); err != nil {
		return nil, err
	}

	tmpl.Kind = template.Kind(kind)
	tmpl.Description = description.String

	return &tmpl, nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM templates WHERE id = $1`

	tmpl, err := scanTemplate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, template.ErrNotFound
		}

		return nil, fmt.Errorf("getting template: %w", err)
	}

	return tmpl, nil
}

func (s *Store) ListTemplates(ctx context.Context, activeOnly bool) ([]*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM templates`
	if activeOnly {
		query += ` WHERE is_active`
	}

	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*template.Template

	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}

		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	return templates, nil
}

// FindDefaultTemplate picks the active default template. The ordering is
// the documented tie-break when more than one template carries the flag.
func (s *Store) FindDefaultTemplate(ctx context.Context) (*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM templates
		WHERE is_default AND is_active
		ORDER BY created_at ASC, id ASC
		LIMIT 1`

	tmpl, err := scanTemplate(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, template.ErrNotFound
		}

		return nil, fmt.Errorf("finding default template: %w", err)
	}

	return tmpl, nil
}

func (s *Store) ListTemplateItems(ctx context.Context, templateID uuid.UUID) ([]*template.TemplateItem, error) {
	query := `
		SELECT id, template_id, name, category, default_amount, taxable, description, display_order
		FROM template_items
		WHERE template_id = $1
		ORDER BY display_order ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing template items: %w", err)
	}
	defer rows.Close()

	var items []*template.TemplateItem

	for rows.Next() {
		var item template.TemplateItem

		var category string

		var description sql.NullString

		if err := rows.Scan(
			&item.ID, &item.TemplateID, &item.Name, &category,
			&item.DefaultAmount, &item.Taxable, &description, &item.DisplayOrder,
		); err != nil {
			return nil, fmt.Errorf("scanning template item: %w", err)
		}

		item.Category = lineitem.Category(category)
		item.Description = description.String

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template item rows: %w", err)
	}

	return items, nil
}

// InsertTemplate writes the template and its items in one transaction.
func (s *Store) InsertTemplate(ctx context.Context, tmpl *template.Template, items []*template.TemplateItem) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	templateQuery := `
		INSERT INTO templates (name, kind, description, is_default, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, templateQuery,
		tmpl.Name,
		tmpl.Kind,
		tmpl.Description,
		tmpl.IsDefault,
		tmpl.IsActive,
	).Scan(&tmpl.ID, &tmpl.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}

	itemQuery := `
		INSERT INTO template_items (template_id, name, category, default_amount, taxable, description, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for _, item := range items {
		item.TemplateID = tmpl.ID

		err := dbTx.QueryRowContext(ctx, itemQuery,
			item.TemplateID,
			item.Name,
			item.Category,
			item.DefaultAmount,
			item.Taxable,
			item.Description,
			item.DisplayOrder,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("inserting template item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) CountTemplates(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}

	return count, nil
}

func (s *Store) DeactivateTemplate(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `UPDATE templates SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating template: %w", err)
	}

	return nil
}

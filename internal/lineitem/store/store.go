package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectLineItemColumns = `
	id, case_id, name, category, amount, taxable, description, display_order, template_id, created_at
`

func scanLineItem(s scanner) (*lineitem.LineItem, error) {
	var item lineitem.LineItem

	var category string

	var description sql.NullString

	if err := s.Scan(
		&item.ID, &item.CaseID, &item.Name, &category, &item.Amount, &item.Taxable,
		&description, &item.DisplayOrder, &item.TemplateID, &item.CreatedAt,
	); err != nil {
		return nil, err
	}

	item.Category = lineitem.Category(category)
	item.Description = description.String

	return &item, nil
}

func (s *Store) ListCaseLineItems(ctx context.Context, caseID uuid.UUID) ([]*lineitem.LineItem, error) {
	query := `SELECT ` + selectLineItemColumns + `
		FROM case_line_items
		WHERE case_id = $1
		ORDER BY display_order ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	var items []*lineitem.LineItem

	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating line item rows: %w", err)
	}

	return items, nil
}

// replaceLockKey derives the advisory lock key that serializes full-ledger
// replaces for one case. Distinct cases hash to independent keys.
func replaceLockKey(caseID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(caseID[:])

	return int64(h.Sum64())
}

type replaceTx struct {
	tx *sql.Tx
}

func (s *Store) BeginReplace(ctx context.Context, caseID uuid.UUID) (lineitem.ReplaceTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning replace tx: %w", err)
	}

	lockKey := replaceLockKey(caseID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring replace lock: %w", err)
	}

	return &replaceTx{tx: dbTx}, nil
}

func (rtx *replaceTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *replaceTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *replaceTx) DeleteCaseLineItems(ctx context.Context, caseID uuid.UUID) error {
	_, err := rtx.tx.ExecContext(ctx, "DELETE FROM case_line_items WHERE case_id = $1", caseID)
	if err != nil {
		return fmt.Errorf("deleting line items: %w", err)
	}

	return nil
}

func (rtx *replaceTx) InsertLineItems(ctx context.Context, items []*lineitem.LineItem) error {
	query := `
		INSERT INTO case_line_items (case_id, name, category, amount, taxable, description, display_order, template_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	for _, item := range items {
		err := rtx.tx.QueryRowContext(ctx, query,
			item.CaseID,
			item.Name,
			item.Category,
			item.Amount,
			item.Taxable,
			item.Description,
			item.DisplayOrder,
			item.TemplateID,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting line item: %w", err)
		}
	}

	return nil
}

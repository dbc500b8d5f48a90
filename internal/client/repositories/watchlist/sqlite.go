package watchlist

import (
	"context"
	"fmt"

	"github.com/fdatrack/fdatrack/internal/common"
	"github.com/fdatrack/fdatrack/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watchlist (id, kind, ref, label, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, ref) DO UPDATE SET label = excluded.label
	`, item.ID, item.Kind, item.Ref, item.Label, item.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to add watchlist item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, ref, label, added_at FROM watchlist ORDER BY added_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	var result []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Kind, &item.Ref, &item.Label, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/poststates/internal/optionstore"
)

// OptionRepository implements optionstore.Store using SQLite.
type OptionRepository struct {
	db *sql.DB
}

func newOptionRepository(db *sql.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

// Ensure OptionRepository implements optionstore.Store.
var _ optionstore.Store = (*OptionRepository)(nil)

// Get returns the stored value for key.
func (r *OptionRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", optionstore.ErrEmptyKey
	}

	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM options WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", optionstore.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read option: %w", err)
	}
	return value, nil
}

// Set stores value under key, creating or overwriting.
func (r *OptionRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return optionstore.ErrEmptyKey
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO options (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write option: %w", err)
	}
	return nil
}

// Delete removes the option. Deleting a missing key is not an error.
func (r *OptionRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return optionstore.ErrEmptyKey
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM options WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}
	return nil
}

// List returns all options sorted by key.
func (r *OptionRepository) List(ctx context.Context) ([]optionstore.Option, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM options ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	defer rows.Close()

	var options []optionstore.Option
	for rows.Next() {
		var model OptionModel
		if err := rows.Scan(&model.Key, &model.Value, &model.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, model.toDomain())
	}
	return options, rows.Err()
}

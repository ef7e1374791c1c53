package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/poststates/internal/post"
)

// postColumns is the list of columns to select for post queries.
const postColumns = `id, guid, title, status, content, created_at, updated_at`

// PostRepository implements post.Repository using SQLite.
type PostRepository struct {
	db *sql.DB
}

func newPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Ensure PostRepository implements post.Repository.
var _ post.Repository = (*PostRepository)(nil)

// scanPost scans a row into a PostModel.
func scanPost(scanner interface{ Scan(...any) error }) (PostModel, error) {
	var model PostModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.Title, &model.Status, &model.Content,
		&model.CreatedAt, &model.UpdatedAt,
	)
	return model, err
}

// Save persists a post. New posts (ID == 0) are inserted with a freshly
// minted GUID; existing posts are updated.
func (r *PostRepository) Save(ctx context.Context, p *post.Post) error {
	now := time.Now()
	p.UpdatedAt = now

	if p.ID == 0 {
		if p.GUID == "" {
			p.GUID = uuid.NewString()
		}
		if p.Status == "" {
			p.Status = post.StatusDraft
		}
		p.CreatedAt = now

		model := toPostModel(p)
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO posts (guid, title, status, content, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			model.GUID, model.Title, model.Status, model.Content, model.CreatedAt, model.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		p.ID = id
		return nil
	}

	model := toPostModel(p)
	_, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, status = ?, content = ?, updated_at = ? WHERE id = ?`,
		model.Title, model.Status, model.Content, model.UpdatedAt, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// FindByID returns the post with the given ID.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)

	model, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return model.toDomain(), nil
}

// List returns posts matching the filter, newest first.
func (r *PostRepository) List(ctx context.Context, filter post.ListFilter) ([]*post.Post, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}

	query := `SELECT ` + postColumns + ` FROM posts`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*post.Post
	for rows.Next() {
		model, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, model.toDomain())
	}
	return posts, rows.Err()
}

// Delete removes the post with the given ID.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

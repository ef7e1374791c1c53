// Package post defines the content item shown in the admin list and the
// repository contract for loading and storing it.
package post

import (
	"context"
	"errors"
	"time"
)

// Statuses a post moves through. Stored as plain strings in the database.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusTrashed   = "trashed"
)

// ErrNotFound is returned when a post does not exist.
var ErrNotFound = errors.New("post not found")

// Post is a content item. The zero ID means the post has not been persisted.
type Post struct {
	ID        int64
	GUID      string
	Title     string
	Status    string
	Content   string // markdown body
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemID returns the post's unique identifier, satisfying statelabel.Item.
func (p Post) ItemID() int64 {
	return p.ID
}

// ListFilter narrows List results.
type ListFilter struct {
	// Status filters by post status. Empty includes all statuses.
	Status string

	// Limit is the maximum number of results. 0 means no limit.
	Limit int
}

// Repository loads and stores posts.
type Repository interface {
	// Save persists the post. New posts (ID == 0) are inserted and get their
	// ID and GUID assigned; existing posts are updated.
	Save(ctx context.Context, p *Post) error

	// FindByID returns the post with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*Post, error)

	// List returns posts matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]*Post, error)

	// Delete removes the post with the given ID, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

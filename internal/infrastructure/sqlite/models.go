package sqlite

import (
	"time"

	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
)

// PostModel represents the database row for the posts table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type PostModel struct {
	ID        int64
	GUID      string
	Title     string
	Status    string
	Content   string
	CreatedAt int64
	UpdatedAt int64
}

func toPostModel(p *post.Post) PostModel {
	return PostModel{
		ID:        p.ID,
		GUID:      p.GUID,
		Title:     p.Title,
		Status:    p.Status,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

func (m PostModel) toDomain() *post.Post {
	return &post.Post{
		ID:        m.ID,
		GUID:      m.GUID,
		Title:     m.Title,
		Status:    m.Status,
		Content:   m.Content,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}

// OptionModel represents the database row for the options table.
type OptionModel struct {
	Key       string
	Value     string
	UpdatedAt int64
}

func (m OptionModel) toDomain() optionstore.Option {
	return optionstore.Option{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}

// Package presentation converts domain types into the DTOs the CLI prints
// and formats them as JSON.
package presentation

import (
	"time"

	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/statelabel"
)

// PostDTO represents a post with its resolved state labels for presentation
type PostDTO struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OptionDTO represents a stored option for presentation
type OptionDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StateDTO represents a configured state and its current assignment
type StateDTO struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value,omitempty"`
	Matched bool   `json:"matched"`
}

// FromPost converts a post and its resolved labels to a DTO.
func FromPost(p *post.Post, labels *statelabel.Labels) PostDTO {
	values := []string{}
	if labels != nil {
		values = labels.Values()
	}
	return PostDTO{
		ID:        p.ID,
		GUID:      p.GUID,
		Title:     p.Title,
		Status:    p.Status,
		Labels:    values,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromOption converts a stored option to a DTO
func FromOption(o optionstore.Option) OptionDTO {
	return OptionDTO{Key: o.Key, Value: o.Value, UpdatedAt: o.UpdatedAt}
}

// FromOptions converts a slice of stored options to DTOs
func FromOptions(opts []optionstore.Option) []OptionDTO {
	dtos := make([]OptionDTO, len(opts))
	for i, o := range opts {
		dtos[i] = FromOption(o)
	}
	return dtos
}

// FromState converts a configured state and its stored value to a DTO.
// An empty value marks the state as unassigned.
func FromState(s statelabel.State, value string) StateDTO {
	return StateDTO{Key: s.Key, Label: s.Label, Value: value, Matched: value != ""}
}

package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatOptions formats a list of options as JSON
func (f *Formatter) FormatOptions(options []OptionDTO) error {
	return f.encode(options)
}

// FormatStates formats a list of states as JSON
func (f *Formatter) FormatStates(states []StateDTO) error {
	return f.encode(states)
}

// FormatPosts formats a list of posts as JSON
func (f *Formatter) FormatPosts(posts []PostDTO) error {
	return f.encode(posts)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

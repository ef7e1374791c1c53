// Package statebadge renders the post title row for the admin list: id,
// title, status, and any resolved state labels appended after the title the
// way the host admin list renders post states.
package statebadge

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/ui/styles"
)

// Config configures the rendering of post rows.
type Config struct {
	// ShowSelection enables the selection indicator ("> " prefix when selected).
	ShowSelection bool

	// Selected indicates whether this row is currently selected.
	// Only has effect when ShowSelection is true.
	Selected bool

	// MaxWidth is the maximum width for the entire rendered line (0 = no limit).
	// When set, the title is truncated to fit; labels are never truncated.
	MaxWidth int
}

// RenderLabels returns the " — Label, Label" suffix for a label set, or ""
// when the set is empty.
func RenderLabels(labels *statelabel.Labels) string {
	if labels == nil || labels.Len() == 0 {
		return ""
	}
	return " " + styles.MutedStyle.Render("—") + " " +
		styles.StateLabelStyle.Render(strings.Join(labels.Values(), ", "))
}

// Render returns the full admin list row for a post.
// Format: [selection][id] title — Label, Label (status)
func Render(p *post.Post, labels *statelabel.Labels, cfg Config) string {
	idText := styles.PostIDStyle.Render(fmt.Sprintf("[%d]", p.ID))
	labelText := RenderLabels(labels)
	statusText := " " + styles.StatusStyle(p.Status).Render("("+p.Status+")")

	var parts []string
	if cfg.ShowSelection {
		if cfg.Selected {
			parts = append(parts, styles.SelectionIndicatorStyle.Render(">")+" ")
		} else {
			parts = append(parts, "  ")
		}
	}
	parts = append(parts, idText)

	title := p.Title
	if cfg.MaxWidth > 0 {
		prefixWidth := 1 // space before title
		for _, part := range parts {
			prefixWidth += lipgloss.Width(part)
		}
		suffixWidth := lipgloss.Width(labelText) + lipgloss.Width(statusText)

		available := cfg.MaxWidth - prefixWidth - suffixWidth
		if available > 0 {
			title = styles.TruncateString(title, available)
		} else {
			title = ""
		}
	}

	if title != "" {
		parts = append(parts, " "+styles.TitleStyle.Render(title))
	}

	return strings.Join(parts, "") + labelText + statusText
}

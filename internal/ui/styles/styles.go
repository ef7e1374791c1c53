// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Post titles, primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Post IDs, GUIDs
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Published
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Draft
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Trashed, errors

	// State label color - bold marker next to the title, mirrors the host
	// admin list convention
	StateLabelColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Selection indicator style
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Row content styles
	TitleStyle      = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PostIDStyle     = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	StateLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(StateLabelColor)
	MutedStyle      = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// StatusStyle returns the style for a post status string.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "published":
		return lipgloss.NewStyle().Foreground(StatusSuccessColor)
	case "draft":
		return lipgloss.NewStyle().Foreground(StatusWarningColor)
	case "trashed":
		return lipgloss.NewStyle().Foreground(StatusErrorColor)
	default:
		return lipgloss.NewStyle().Foreground(TextSecondaryColor)
	}
}

package repl

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used for session output.
type Theme struct {
	// Primary is used for the prompt.
	Primary lipgloss.Color

	// Secondary is used for the welcome, goodbye and info messages.
	Secondary lipgloss.Color

	// Muted is for the license notice.
	Muted lipgloss.Color

	// Error is for the parse error message.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles holds the lipgloss styles applied to session output.
// Styling never changes the text itself; on writers that are not colour
// terminals the renderer falls back to plain output.
type Styles struct {
	plain bool

	// Prompt style for the input prompt.
	Prompt lipgloss.Style

	// Banner style for the welcome, goodbye and info messages.
	Banner lipgloss.Style

	// Notice style for the license notice.
	Notice lipgloss.Style

	// Error style for the parse error message.
	Error lipgloss.Style
}

// NewStyles creates styles rendered for the given writer.
// If theme is nil, DefaultTheme is used.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Prompt: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Banner: r.NewStyle().
			Foreground(theme.Secondary),

		Notice: r.NewStyle().
			Foreground(theme.Muted),

		Error: r.NewStyle().
			Foreground(theme.Error),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() *Styles {
	return &Styles{plain: true}
}

// paint renders text one line at a time so multi-line messages are not
// padded to a common width.
func (s *Styles) paint(style lipgloss.Style, text string) string {
	if s.plain || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/stylecheck/pkg/core"
)

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Location lipgloss.Style
}

// NewStyles creates colored styles whose color profile is detected from w.
func NewStyles(w io.Writer) *Styles {
	re := lipgloss.NewRenderer(w)
	return &Styles{
		Header1:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  re.NewStyle().Bold(true).Underline(true),
		Bold:     re.NewStyle().Bold(true),
		Muted:    re.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  re.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    re.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning:  re.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     re.NewStyle().Foreground(lipgloss.Color("14")),
		Location: re.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header1:  plain,
		Header2:  plain,
		Bold:     plain,
		Muted:    plain,
		Success:  plain,
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Location: plain,
	}
}

// Severity returns the style for a severity.
func (s *Styles) Severity(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return s.Error
	case core.SeverityWarning:
		return s.Warning
	case core.SeverityInfo:
		return s.Info
	default:
		return s.Muted
	}
}

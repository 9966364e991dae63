package views

import (
	"github.com/Cyclone1070/discoverpath/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles derived from UI config.
type Styles struct {
	Primary lipgloss.Style
	Error   lipgloss.Style
	Faint   lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles builds styles from the configured colors.
func NewStyles(cfg config.UIConfig) Styles {
	primary := lipgloss.Color(cfg.ColorPrimary)
	return Styles{
		Primary: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorError)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorFaint)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
	}
}

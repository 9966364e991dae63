package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/discoverpath/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPicker renders the suggestion picker
func RenderPicker(s models.PickerState, styles Styles) string {
	if len(s.Choices) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(s.Title))
	lines = append(lines, "")

	for i, choice := range s.Choices {
		if i == s.Index {
			// Highlight selected
			lines = append(lines, styles.Primary.Render(fmt.Sprintf("▸ %s", choice)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", choice))
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.Faint.Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	return styles.Box.Render(strings.Join(lines, "\n"))
}

package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal output.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	style string
}

// NewGlamourRenderer creates a renderer using the named glamour style.
// "auto" picks a dark or light style from the terminal background.
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

// Render renders content wrapped at width columns.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	styleOpt := glamour.WithStandardStyle(g.style)
	if g.style == "" || g.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// SuggestionsMarkdown formats suggested paths as a markdown list.
func SuggestionsMarkdown(suggestions []string) string {
	var sb strings.Builder
	sb.WriteString("**Did you mean:**\n\n")
	for _, s := range suggestions {
		sb.WriteString("- `")
		sb.WriteString(s)
		sb.WriteString("`\n")
	}
	return sb.String()
}

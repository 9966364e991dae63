package views

import (
	"errors"
	"strings"

	"github.com/Cyclone1070/discoverpath/internal/tool/service/path"
	"github.com/Cyclone1070/discoverpath/internal/ui/services"
)

// RenderError renders a resolution failure for the terminal. Suggestions of
// an ambiguous match go through renderer when it is non-nil, and fall back
// to a plain list otherwise or when rendering fails.
func RenderError(err error, styles Styles, renderer services.MarkdownRenderer, width int) string {
	var notFound *path.PathNotFoundError
	if !errors.As(err, &notFound) || !notFound.Ambiguous() {
		return styles.Error.Render("✗ " + err.Error())
	}

	headline := styles.Error.Render("✗ no such file or directory: " + notFound.Path)

	if renderer != nil {
		rendered, rerr := renderer.Render(services.SuggestionsMarkdown(notFound.Suggestions), width)
		if rerr == nil {
			return headline + "\n" + rendered
		}
	}

	lines := []string{headline, "Did you mean:"}
	for _, s := range notFound.Suggestions {
		lines = append(lines, "  - "+styles.Primary.Render(s))
	}
	return strings.Join(lines, "\n")
}

// Package markdown renders todo descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	indentpkg "github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SafeRender formats markdown text for terminal output, indenting every line
// by indent spaces. If the renderer fails, the text is wrapped as plain
// paragraphs instead.
func SafeRender(width, indent int, input []byte) []byte {
	value := strings.TrimRight(newlines.Replace(string(input)), "\n")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	indent = max(indent, 0)
	renderWidth := max(width-indent, 1)

	rendered, ok := render(renderWidth, value)
	if !ok {
		rendered = Reflow(value, renderWidth)
	}
	rendered = strings.TrimRight(rendered, "\r\n")
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(indentpkg.String(rendered, uint(indent)))
}

func render(width int, value string) (rendered string, ok bool) {
	r := markdownRenderer(width)
	if r == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			rendered, ok = "", false
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.Document.Margin = nil
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

// Reflow wraps plain text to width, keeping blank-line paragraph breaks and
// collapsing whitespace within each paragraph.
func Reflow(value string, width int) string {
	var paragraphs []string
	for _, paragraph := range splitParagraphs(value) {
		normalized := strings.Join(strings.Fields(paragraph), " ")
		if normalized == "" {
			continue
		}
		paragraphs = append(paragraphs, wordwrap.String(normalized, width))
	}
	return strings.Join(paragraphs, "\n\n")
}

func splitParagraphs(value string) []string {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(value, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

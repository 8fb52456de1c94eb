package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/mutualfundportal/portal/internal/domain"
)

// PrettyFormatter renders the markdown report for the terminal.
type PrettyFormatter struct {
	// Width wraps paragraphs; 0 uses 120 columns.
	Width int
}

func (PrettyFormatter) Name() string { return "pretty" }

func (p PrettyFormatter) Format(report *domain.Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	width := p.Width
	if width <= 0 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return []byte(out), nil
}

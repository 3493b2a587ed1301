package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Reporter renders analyses to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(analysis domain.Analysis) error {
	tmpl := `
=== {{.Title}} ===
Module: {{.Module}}{{if .Score}} | Score: {{.Score}}/100{{end}} | Sentiment: {{.Sentiment}}
Updated: {{.LastUpdated.Format "2006-01-02 15:04"}}

{{.Content}}
{{if .Details.Highlights}}
Highlights:
{{range .Details.Highlights}}  + {{.}}
{{end}}{{end}}{{if .Details.Warnings}}
Warnings:
{{range .Details.Warnings}}  ! {{.}}
{{end}}{{end}}{{if .Details.Suggestions}}
Suggestions:
{{range .Details.Suggestions}}  - {{.}}
{{end}}{{end}}{{if .Details.TopPriority}}
Top priority: {{.Details.TopPriority}}
{{end}}{{if .Details.Encouragement}}
{{.Details.Encouragement}}
{{end}}{{if .Details.Motivation}}
{{.Details.Motivation}}
{{end}}`

	t, err := template.New("analysis").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, analysis)
}

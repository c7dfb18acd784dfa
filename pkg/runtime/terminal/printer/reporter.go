package printer

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
)

// Reporter prints run results and report listings in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) HandleRunResult(result domain.RunResult) error {
	tmpl := `
Report: {{.ReportID}}
Processed: {{.Processed}}/{{.Total}} sections
{{if .Success}}Status: OK{{else}}Status: FAILED
Error: {{.Error}}{{end}}
`
	t, err := template.New("run").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, result)
}

func (r *Reporter) HandleReportList(reports []domain.Report) error {
	tmpl := `
{{len .}} report(s)
{{range .}}
- {{.ID}}  {{.Title}} ({{len .Sections}} sections, client {{.ClientID}})
{{end}}
`
	t, err := template.New("reports").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, reports)
}

// Progress writes one progress line per processed section.
func (r *Reporter) Progress(current, total int, sectionID string) {
	fmt.Fprintf(r.writer, "[%d/%d] %s\n", current, total, sectionID)
}

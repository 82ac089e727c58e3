package report

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed templates/step_summary.md.tmpl
var templatesFS embed.FS

var stepSummaryTmpl = template.Must(loadTemplate("templates/step_summary.md.tmpl"))

func loadTemplate(name string) (*template.Template, error) {
	b, err := templatesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded template: %w", err)
	}
	t, err := template.New(name).Option("missingkey=zero").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse embedded template: %w", err)
	}
	return t, nil
}

// StepSummary renders the markdown block GitHub Actions shows on the job page.
func StepSummary(s Summary) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Summary Summary
		Line    string
	}{s, s.String()}
	if err := stepSummaryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render step summary: %w", err)
	}
	return buf.String(), nil
}

// AppendStepSummary appends the rendered block to path, creating it if needed.
func AppendStepSummary(path string, s Summary) error {
	if path == "" {
		return fmt.Errorf("step summary path is empty")
	}
	body, err := StepSummary(s)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open step summary: %w", err)
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return fmt.Errorf("write step summary: %w", err)
	}
	return f.Close()
}

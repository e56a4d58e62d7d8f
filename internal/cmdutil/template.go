package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DefaultFuncMap returns the template functions available in --format
// templates.
func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"join":  strings.Join,
	}
}

// ExecuteTemplate parses and executes the Go template from f once per item,
// one line of output each.
func ExecuteTemplate(w io.Writer, f Format, items []any) error {
	tmpl, err := template.New("").Funcs(DefaultFuncMap()).Parse(f.Template())
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return fmt.Errorf("template execution failed: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

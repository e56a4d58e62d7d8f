package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
)

// Format mode constants for --format flag parsing.
const (
	ModeDefault  = ""
	ModeJSON     = "json"
	ModeTemplate = "template"
)

// Format is a parsed format specification from the --format flag.
type Format struct {
	mode     string
	template string
}

// ParseFormat parses a raw --format flag value.
//
// Recognized inputs:
//   - ""                        → ModeDefault
//   - "json"                    → ModeJSON
//   - "{{.Application}} ..."    → ModeTemplate (contains "{{")
//   - anything else             → FlagError
func ParseFormat(raw string) (Format, error) {
	switch {
	case raw == "":
		return Format{mode: ModeDefault}, nil
	case raw == "json":
		return Format{mode: ModeJSON}, nil
	case strings.Contains(raw, "{{"):
		return Format{mode: ModeTemplate, template: raw}, nil
	default:
		return Format{}, FlagErrorf("invalid format string: %q", raw)
	}
}

// IsDefault reports whether the format is the default table output.
func (f Format) IsDefault() bool { return f.mode == ModeDefault }

// IsJSON reports whether the format is JSON output.
func (f Format) IsJSON() bool { return f.mode == ModeJSON }

// IsTemplate reports whether the format is a Go template.
func (f Format) IsTemplate() bool { return f.mode == ModeTemplate }

// Template returns the Go template string, or "" for non-template formats.
func (f Format) Template() string { return f.template }

// FormatFlags holds parsed state for the --format, --json and --quiet flags.
type FormatFlags struct {
	Format Format
	Quiet  bool

	raw      string
	jsonFlag bool
}

// IsJSON reports whether JSON output was requested.
func (ff *FormatFlags) IsJSON() bool { return ff.Format.IsJSON() }

// IsTemplate reports whether template output was requested.
func (ff *FormatFlags) IsTemplate() bool { return ff.Format.IsTemplate() }

// Parse validates the raw flag values. Call at the start of RunE.
func (ff *FormatFlags) Parse() error {
	f, err := ParseFormat(ff.raw)
	if err != nil {
		return err
	}
	if ff.jsonFlag {
		if !f.IsDefault() {
			return FlagErrorf("--json cannot be combined with --format")
		}
		f = Format{mode: ModeJSON}
	}
	ff.Format = f
	return nil
}

// AddFormatFlags registers --format, --json and --quiet on cmd and returns
// the holder to read after flag parsing.
func AddFormatFlags(cmd *cobra.Command) *FormatFlags {
	ff := &FormatFlags{}
	cmd.Flags().StringVar(&ff.raw, "format", "", `Output format: "json" or a Go template`)
	cmd.Flags().BoolVar(&ff.jsonFlag, "json", false, "Output as JSON (shorthand for --format json)")
	cmd.Flags().BoolVarP(&ff.Quiet, "quiet", "q", false, "Only display application names")
	return ff
}

// ToAny converts a typed slice into []any for template execution.
func ToAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

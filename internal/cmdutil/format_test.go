package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantJSON bool
		wantTmpl string
		wantErr  string
	}{
		{name: "empty string"},
		{name: "json", raw: "json", wantJSON: true},
		{name: "template", raw: "{{.Application}}", wantTmpl: "{{.Application}}"},
		{name: "multi-field template", raw: "{{.Application}} {{.Version}}", wantTmpl: "{{.Application}} {{.Version}}"},
		{name: "invalid bare word", raw: "table", wantErr: `invalid format string: "table"`},
		{name: "yaml is not supported", raw: "yaml", wantErr: `invalid format string: "yaml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var flagErr *FlagError
				assert.ErrorAs(t, err, &flagErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, got.IsJSON())
			assert.Equal(t, tt.wantTmpl, got.Template())
		})
	}
}

func TestFormatFlags_Parse(t *testing.T) {
	newCmd := func() (*cobra.Command, *FormatFlags) {
		cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
		return cmd, AddFormatFlags(cmd)
	}

	t.Run("json shorthand", func(t *testing.T) {
		cmd, ff := newCmd()
		cmd.SetArgs([]string{"--json"})
		require.NoError(t, cmd.Execute())
		require.NoError(t, ff.Parse())
		assert.True(t, ff.IsJSON())
	})

	t.Run("json conflicts with format", func(t *testing.T) {
		cmd, ff := newCmd()
		cmd.SetArgs([]string{"--json", "--format", "{{.Application}}"})
		require.NoError(t, cmd.Execute())
		assert.Error(t, ff.Parse())
	})

	t.Run("quiet", func(t *testing.T) {
		cmd, ff := newCmd()
		cmd.SetArgs([]string{"-q"})
		require.NoError(t, cmd.Execute())
		require.NoError(t, ff.Parse())
		assert.True(t, ff.Quiet)
	})
}

func TestToAny(t *testing.T) {
	got := ToAny([]string{"a", "b"})
	assert.Equal(t, []any{"a", "b"}, got)
}

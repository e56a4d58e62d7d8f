package avm

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/iostreams/iostreamstest"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "exit error passes through its code",
			err:      &cmdutil.ExitError{Code: 3},
			wantCode: exitMiss,
		},
		{
			name:     "silent error prints nothing",
			err:      cmdutil.SilentError,
			wantCode: exitError,
		},
		{
			name:     "flag error gets usage code and help hint",
			err:      cmdutil.FlagErrorf("unknown flag"),
			wantCode: exitUsage,
			wantOut:  "--help",
		},
		{
			name:     "generic error",
			err:      errors.New("boom"),
			wantCode: exitError,
			wantOut:  "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			f := &cmdutil.Factory{IOStreams: ios.IOStreams}
			cmd := &cobra.Command{Use: "avm"}

			code := handleError(f, cmd, tt.err)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, ios.ErrBuf.String(), tt.wantOut)
			}
			if tt.err == cmdutil.SilentError {
				assert.Empty(t, ios.ErrBuf.String())
			}
		})
	}
}

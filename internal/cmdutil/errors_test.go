package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())

	wrapped := fmt.Errorf("running command: %w", err)
	var exitErr *ExitError
	assert.True(t, errors.As(wrapped, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}

func TestFlagError(t *testing.T) {
	err := FlagErrorf("unknown flag %q", "--bogus")
	assert.Equal(t, `unknown flag "--bogus"`, err.Error())

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))

	inner := errors.New("bad argument")
	assert.ErrorIs(t, FlagErrorWrap(inner), inner)
}

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "avm version 1.2.0 (2026-08-30)\n", Format("v1.2.0", "2026-08-30"))
	assert.Equal(t, "avm version 1.2.0\n", Format("1.2.0", ""))
	assert.Equal(t, "avm version dev\n", Format("dev", ""))
}

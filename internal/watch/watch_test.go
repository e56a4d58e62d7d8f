package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForFile_alreadyExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.xml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := WaitForFile(context.Background(), path, time.Second)
	assert.NoError(t, err)
}

func TestWaitForFile_appearsLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.xml")

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(path, []byte("x"), 0o644)
	}()

	err := WaitForFile(context.Background(), path, 5*time.Second)
	assert.NoError(t, err)
}

func TestWaitForFile_timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.xml")

	err := WaitForFile(context.Background(), path, 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestWaitForFile_contextCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.xml")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := WaitForFile(ctx, path, 5*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForFile_missingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "reg.xml")

	err := WaitForFile(context.Background(), path, time.Second)
	assert.Error(t, err)
}

package sandbox_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sandbox"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Vertex.shader")
	require.NoError(t, os.WriteFile(file, []byte("#version 460 core\n"), 0o644))

	w, err := sandbox.NewWatcher(dir, dir)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Pending(), "nothing changed yet")

	require.NoError(t, os.WriteFile(file, []byte("#version 460 core\nvoid main() {}\n"), 0o644))
	assert.Eventually(t, w.Pending, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := sandbox.NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

//go:build unix

package protodecl

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSourceFromPipe(t *testing.T) {
	fifo := filepath.Join(t.TempDir(), "input.fifo")
	require.NoError(t, syscall.Mkfifo(fifo, 0o600))

	written := make(chan error, 1)
	go func() {
		written <- os.WriteFile(fifo, []byte("field x u32;"), 0o600)
	}()

	src, err := ReadSource(fifo)
	require.NoError(t, err)
	require.NoError(t, <-written)
	assert.Equal(t, "field x u32;", src)

	tokens, err := Tokenize(src)
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}

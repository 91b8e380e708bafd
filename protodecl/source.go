package protodecl

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadSource loads the file at path into memory. Regular files are mapped
// read-only, copied, then unmapped; pipes, devices and other special files
// are read to end of stream. The file is closed before ReadSource returns, so
// no handle stays open while tokens are produced.
func ReadSource(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", sourceError(path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", sourceError(path, err)
	}
	if info.IsDir() {
		return "", sourceError(path, fmt.Errorf("%s is a directory", path))
	}
	// Special files report no meaningful size and cannot be mapped.
	if !info.Mode().IsRegular() {
		data, err := io.ReadAll(file)
		if err != nil {
			return "", sourceError(path, fmt.Errorf("read %s: %w", path, err))
		}
		return string(data), nil
	}
	// Zero-length mappings are rejected on most platforms.
	if info.Size() == 0 {
		return "", nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return "", sourceError(path, fmt.Errorf("map %s: %w", path, err))
	}
	text := string(mapped)
	if err := mapped.Unmap(); err != nil {
		return "", sourceError(path, fmt.Errorf("unmap %s: %w", path, err))
	}
	return text, nil
}

func sourceError(path string, err error) *Error {
	return &Error{Kind: ErrSourceUnreadable, Path: path, Err: err}
}

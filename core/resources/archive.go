package resources

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from Locate
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrRead, path, err)
	}
	return data, nil
}

// ExtractFirst opens the zip archive at path and returns the decompressed
// content of the first entry, in archive order, whose name ends with ext
// (compared case-insensitively).
func ExtractFirst(path, ext string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from Locate
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}

	archive, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrArchiveOpen, path, err)
	}

	ext = strings.ToLower(ext)
	for _, entry := range archive.File {
		if !strings.HasSuffix(strings.ToLower(entry.Name), ext) {
			continue
		}
		return readEntry(path, entry)
	}

	return nil, fmt.Errorf("%w: no %s entry found in zip %q", ErrNoMatchingEntry, ext, path)
}

func readEntry(path string, entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w %s in %q: %v", ErrEntryRead, entry.Name, path, err)
	}
	defer rc.Close()

	buf := bytes.NewBuffer(make([]byte, 0, capHint(entry.UncompressedSize64)))
	if _, err := io.Copy(buf, rc); err != nil {
		return nil, fmt.Errorf("%w %s in %q: %v", ErrEntryRead, entry.Name, path, err)
	}
	return buf.Bytes(), nil
}

// Header sizes are untrusted; cap the preallocation.
func capHint(size uint64) int {
	const maxHint = 64 << 20
	if size > maxHint {
		return maxHint
	}
	return int(size)
}

package mse

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// setMember is the archive member holding the set data file.
const setMember = "set"

// OpenArchive wraps raw archive bytes in a zip reader.
func OpenArchive(data []byte) (*zip.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening set archive: %w", err)
	}
	return r, nil
}

// OpenArchiveFile opens a set archive from disk.
func OpenArchiveFile(path string) (*zip.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return OpenArchive(data)
}

// ReadSetData extracts and decodes the set data member, stripping a leading
// byte-order marker if present.
func ReadSetData(archive *zip.Reader) (string, error) {
	f, err := archive.Open(setMember)
	if err != nil {
		return "", fmt.Errorf("opening %q member: %w", setMember, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %q member: %w", setMember, err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

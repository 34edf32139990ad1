// Package fileutil provides the file and path helpers the build driver
// relies on: random run identities, prefix-scoped directory listings, and
// reads that distinguish a missing file from an empty one.
package fileutil

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// randomStemLength is the length of the random token appended to temp file
// stems. Long enough that collisions between concurrent or prior runs are
// negligible; existing files are not re-checked.
const randomStemLength = 16

// RandomString returns a random alphanumeric string of length n.
func RandomString(n int) string {
	s := rand.Text()
	for len(s) < n {
		s += rand.Text()
	}
	return s[:n]
}

// RandomNamePath derives a new path in the same directory and with the same
// extension as path, but with a fresh random stem. The stem uniquely
// identifies one build: every file the toolchain produces next to the source
// shares it, which makes cleanup a prefix match.
func RandomNamePath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(dir, stem+"_"+RandomString(randomStemLength)+ext)
}

// ReadFileIfExists reads the file at path. A missing file is reported via
// exists=false and is not an error; any other read failure is.
func ReadFileIfExists(path string) (content string, exists bool, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the caller's template
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), true, nil
}

// ListWithPrefix returns the paths of all regular files in dir whose name
// starts with prefix.
func ListWithPrefix(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// MoveFile moves src to dst, falling back to copy-and-remove when a rename
// crosses filesystems.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %q after copy: %w", src, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- src is the build's own artifact
	if err != nil {
		return fmt.Errorf("opening %q: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- dst is the caller's requested output
	if err != nil {
		return fmt.Errorf("creating %q: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying to %q: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", dst, err)
	}
	return nil
}

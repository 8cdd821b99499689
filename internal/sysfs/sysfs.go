// Package sysfs provides fallible access to small kernel-exported text
// files. All reads and writes in the repository go through FS so tests
// can substitute an in-memory tree for the live /sys hierarchy.
package sysfs

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/spf13/afero"
)

const writePerm = 0o644

type FS struct {
	fs afero.Fs
}

// New returns an FS backed by the operating system filesystem.
func New() *FS {
	return &FS{fs: afero.NewOsFs()}
}

// NewFromFs returns an FS backed by the given afero filesystem.
func NewFromFs(fs afero.Fs) *FS {
	return &FS{fs: fs}
}

// Exists reports whether path exists. Access failures count as absent.
func (f *FS) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	if err != nil {
		return false
	}

	return ok
}

// DirExists reports whether path exists and is a directory.
func (f *FS) DirExists(path string) bool {
	ok, err := afero.DirExists(f.fs, path)
	if err != nil {
		return false
	}

	return ok
}

// ReadString reads path and returns its contents with surrounding
// whitespace trimmed. Sysfs values carry a trailing newline.
func (f *FS) ReadString(path string) (string, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", wrapIOError(path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// ReadInt reads path and parses it as a base-10 integer.
func (f *FS) ReadInt(path string) (int, error) {
	errFactory := errors.New()

	s, err := f.ReadString(path)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, errFactory.WithData(errors.ErrMalformedValue, path)
	}

	return value, nil
}

// WriteString writes value to path in a single attempt, no retry.
func (f *FS) WriteString(path, value string) error {
	if err := afero.WriteFile(f.fs, path, []byte(value), writePerm); err != nil {
		return wrapIOError(path, err)
	}

	return nil
}

// Glob returns the paths matching pattern in sorted order, making
// enumeration deterministic across calls. Errors yield an empty slice.
func (f *FS) Glob(pattern string) []string {
	matches, err := afero.Glob(f.fs, pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	return matches
}

func wrapIOError(path string, err error) error {
	errFactory := errors.New()

	switch {
	case os.IsNotExist(err):
		return errFactory.WithData(errors.ErrNodeAbsent, path)
	case os.IsPermission(err):
		return errFactory.WithData(errors.ErrPermissionDenied, path)
	default:
		return errFactory.Wrap(errors.ErrInternal, err)
	}
}

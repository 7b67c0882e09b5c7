package static

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source supplies files to Send.
//
// Names are slash-separated and relative to the source root. Send only
// passes cleaned names without ".." segments; the empty name is the root.
// Missing files must be reported with an error matching fs.ErrNotExist.
type Source interface {
	Stat(ctx context.Context, name string) (fs.FileInfo, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Dir returns a Source reading from the local directory root.
// Symbolic links are followed, including links pointing outside root.
func Dir(root string) Source {
	return dirSource{root: filepath.Clean(root)}
}

// ConfinedDir is like Dir but resolves symbolic links and reports
// ErrOutsideRoot for any that lead outside root.
func ConfinedDir(root string) Source {
	return dirSource{root: filepath.Clean(root), confined: true}
}

type dirSource struct {
	root     string
	confined bool
}

func (d dirSource) Stat(_ context.Context, name string) (fs.FileInfo, error) {
	full, err := d.path(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(full)
}

func (d dirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	full, err := d.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (d dirSource) path(name string) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(name))
	if err := validatePathSecurity(d.root, full); err != nil {
		return "", err
	}
	if d.confined {
		root, err := filepath.EvalSymlinks(d.root)
		if err != nil {
			return "", err
		}
		resolved, err := filepath.EvalSymlinks(full)
		if err != nil {
			return "", err
		}
		if err := validatePathSecurity(root, resolved); err != nil {
			return "", err
		}
	}
	return full, nil
}

// FS returns a Source backed by fsys, typically an embed.FS.
func FS(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) Stat(_ context.Context, name string) (fs.FileInfo, error) {
	return fs.Stat(s.fsys, fsName(name))
}

func (s fsSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return s.fsys.Open(fsName(name))
}

func fsName(name string) string {
	if name == "" {
		return "."
	}
	return name
}

// validatePathSecurity ensures target stays within root.
func validatePathSecurity(root, target string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrOutsideRoot
	}
	return nil
}

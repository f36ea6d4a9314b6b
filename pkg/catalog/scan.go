package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// CompiledExt is the extension of compiled gettext catalogs.
const CompiledExt = ".mo"

// ErrNoDir is returned by Scan when the catalog root does not exist or is
// not a directory.
var ErrNoDir = errors.New("catalog: catalog directory does not exist")

// Scan returns the names of subdirectories of dir that hold at least one
// compiled catalog in their LC_MESSAGES directory, in directory-listing order.
func Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoDir, dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a file", ErrNoDir, dir)
	}
	return ScanFS(os.DirFS(dir))
}

// ScanFS is Scan over the root of an fs.FS, e.g. an embed.FS sub-tree.
func ScanFS(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		messages := path.Join(e.Name(), MessagesDir)

		// fs.Stat follows symlinked locale directories.
		info, err := fs.Stat(fsys, messages)
		if err != nil || !info.IsDir() {
			continue
		}

		files, err := fs.ReadDir(fsys, messages)
		if err != nil {
			continue
		}
		if hasCompiled(files) {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

func hasCompiled(files []fs.DirEntry) bool {
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), CompiledExt) {
			return true
		}
	}
	return false
}

// Package coverart toggles the visibility of cover-art images in an album
// tree by adding or removing a leading dot on the file name.
package coverart

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// visibleNames are the cover-art file names recognized when hiding.
var visibleNames = map[string]struct{}{
	"cover.jpg":  {},
	"cover.jpeg": {},
	"cover.png":  {},
}

// hiddenNames are the dot-prefixed counterparts recognized when showing.
var hiddenNames = map[string]struct{}{
	".cover.jpg":  {},
	".cover.jpeg": {},
	".cover.png":  {},
}

// Result summarizes one cover-art pass.
type Result struct {
	// Scanned is the number of files visited.
	Scanned int
	// Renamed is the number of cover-art files actually renamed.
	Renamed int
}

// Process walks root recursively and renames cover-art files: hide=true adds
// a dot prefix to visible covers, hide=false removes it from hidden ones.
// A rename is skipped when the target name already exists, so repeated runs
// are idempotent and never clobber files.
func Process(root string, hide bool, logger *slog.Logger) (Result, error) {
	logger = logger.With(slog.String("component", "coverart"))
	var res Result

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during walk", slog.String("path", path), slog.String("error", err.Error()))
			if path == root {
				return fmt.Errorf("cannot read directory %q: %w", path, err)
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		res.Scanned++

		renamed, renameErr := renameOne(path, hide)
		if renameErr != nil {
			logger.Warn("Failed to rename cover art", slog.String("path", path), slog.String("error", renameErr.Error()))
			return nil
		}
		if renamed {
			res.Renamed++
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	logger.Debug("Cover art pass complete", slog.Int("scanned", res.Scanned), slog.Int("renamed", res.Renamed))
	return res, nil
}

// renameOne applies the rename rule to a single file, reporting whether a
// rename happened.
func renameOne(path string, hide bool) (bool, error) {
	name := filepath.Base(path)
	dir := filepath.Dir(path)

	var target string
	if hide {
		if _, ok := visibleNames[name]; !ok {
			return false, nil
		}
		target = filepath.Join(dir, "."+name)
	} else {
		if _, ok := hiddenNames[name]; !ok {
			return false, nil
		}
		target = filepath.Join(dir, strings.TrimPrefix(name, "."))
	}

	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.Rename(path, target); err != nil {
		return false, err
	}
	return true, nil
}

package audit

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// EnumerateAudioFiles resolves a user-supplied path into the ordered set of
// candidate audio files for a run.
//
// A single file is accepted only when its extension is in the allow-list;
// otherwise ErrUnsupportedFile is returned. A directory is walked recursively
// and every allow-listed file under it is collected; symbolic links to files
// are followed, links to directories are not walked into. A path that is
// neither yields ErrInvalidPath, and a directory scan
// with zero matches yields ErrNoAudioFiles so callers can exit cleanly with a
// "nothing to do" message.
//
// Matches from a directory scan are sorted lexicographically, so the order is
// stable within a run and across runs of the same tree.
func EnumerateAudioFiles(inputPath string, extensions []string, logger *slog.Logger) ([]AudioFileRef, error) {
	logger = logger.With(slog.String("component", "walker"))

	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, inputPath)
		}
		return nil, fmt.Errorf("stat %q: %w", inputPath, err)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(inputPath))
		if !slices.Contains(extensions, ext) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, inputPath)
		}
		return []AudioFileRef{{Path: inputPath, Ext: ext}}, nil
	}

	logger.Debug("Starting directory walk", slog.String("path", inputPath))
	var files []AudioFileRef
	walkErr := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during walk", slog.String("path", path), slog.String("error", err.Error()))
			if path == inputPath && os.IsPermission(err) {
				return fmt.Errorf("permission denied reading input directory %q: %w", path, err)
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Symlinks to regular files are listed like the files themselves;
			// links to directories are not walked into, and broken links are
			// skipped.
			target, statErr := os.Stat(path)
			if statErr != nil || !target.Mode().IsRegular() {
				logger.Debug("Skipping symbolic link", slog.String("path", path))
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(extensions, ext) {
			return nil
		}
		files = append(files, AudioFileRef{Path: path, Ext: ext})
		return nil
	})
	if walkErr != nil {
		logger.Error("Directory walk failed", slog.String("error", walkErr.Error()))
		return nil, fmt.Errorf("directory walk failed: %w", walkErr)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoAudioFiles, inputPath)
	}

	slices.SortFunc(files, func(a, b AudioFileRef) int {
		return strings.Compare(a.Path, b.Path)
	})
	logger.Debug("Directory walk completed", slog.Int("matches", len(files)))
	return files, nil
}

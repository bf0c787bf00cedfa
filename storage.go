// FILE: storage.go
package dailylog

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// logFilePattern matches <prefix>_<YYYYMMDD><anything>.<ext>
func logFilePattern(prefix, ext string) *regexp.Regexp {
	suffix := ""
	if ext != "" {
		suffix = regexp.QuoteMeta("." + ext)
	}
	return regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `_\d{8}.*` + suffix + "$")
}

// fileName assembles a log file name; the zero-padded date keeps lexical order chronological
func (s *Store) fileName(stem string) string {
	if s.cfg.Extension == "" {
		return s.cfg.Prefix + "_" + stem
	}
	return s.cfg.Prefix + "_" + stem + "." + s.cfg.Extension
}

// dayPath returns the primary file for the day of t
func (s *Store) dayPath(t time.Time) string {
	return filepath.Join(s.cfg.Directory, s.fileName(t.Format(dayLayout)))
}

// splitPath returns the same-day file disambiguated by time of day
func (s *Store) splitPath(t time.Time) string {
	return filepath.Join(s.cfg.Directory, s.fileName(t.Format(dayLayout)+"_"+t.Format(splitLayout)))
}

// resolvePathLocked selects the file for a pending line of the given length.
// Rollover is keyed on the day, so a split file stays current until midnight.
// At most one split happens per call; an oversized line still lands in the split file.
func (s *Store) resolvePathLocked(now time.Time, pending int64) string {
	day := now.Format(dayLayout)
	if day != s.active.day {
		s.active.day = day
		s.setActiveLocked(s.dayPath(now))
		s.state.Rollovers.Add(1)
		_, _ = s.cleanupLocked()
	}

	size, exists := s.activeSizeLocked()
	if exists && size+pending > s.cfg.MaxFileSizeBytes {
		if split := s.splitPath(now); split != s.active.path {
			s.setActiveLocked(split)
			s.state.Rotations.Add(1)
		}
	}

	return s.active.path
}

// setActiveLocked switches the current file and invalidates the size hint
func (s *Store) setActiveLocked(path string) {
	s.active.path = path
	s.active.size = 0
	s.active.exists = false
	s.active.sized = false
}

// activeSizeLocked returns the running size of the current file, statting it once per path
func (s *Store) activeSizeLocked() (int64, bool) {
	if !s.active.sized {
		s.active.sized = true
		if fi, err := s.fs.Stat(s.active.path); err == nil {
			s.active.size = fi.Size()
			s.active.exists = true
		}
	}
	return s.active.size, s.active.exists
}

// appendLocked appends line to path, creating the file when absent
func (s *Store) appendLocked(path string, line []byte) error {
	f, err := s.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}

	n, writeErr := f.Write(line)
	closeErr := f.Close()

	if path == s.active.path {
		s.active.size += int64(n)
		s.active.exists = true
	}
	return combineErrors(writeErr, closeErr)
}

// cleanupLocked keeps the MaxRetainedFiles lexically greatest log files and removes the rest.
// Names are date-prefixed and zero-padded, so descending lexical order is newest first.
func (s *Store) cleanupLocked() (int, error) {
	dir := s.cfg.Directory

	ok, err := afero.DirExists(s.fs, dir)
	if err != nil {
		s.internalLog("failed to stat log directory '%s' for cleanup: %v\n", dir, err)
		return 0, fmtErrorf("failed to stat log directory '%s' for cleanup: %w", dir, err)
	}
	if !ok {
		return 0, nil
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.internalLog("failed to read log directory '%s' for cleanup: %v\n", dir, err)
		return 0, fmtErrorf("failed to read log directory '%s' for cleanup: %w", dir, err)
	}
	s.state.CleanupPasses.Add(1)

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !s.pattern.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	if int64(len(names)) <= s.cfg.MaxRetainedFiles {
		return 0, nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var errs []error
	removed := 0
	for _, name := range names[s.cfg.MaxRetainedFiles:] {
		filePath := filepath.Join(dir, name)
		if err := s.fs.Remove(filePath); err != nil {
			s.internalLog("failed to remove old log file '%s': %v\n", filePath, err)
			errs = append(errs, fmtErrorf("failed to remove old log file '%s': %w", filePath, err))
			continue
		}
		removed++
		s.state.Deletions.Add(1)
	}

	return removed, combineErrors(errs...)
}

// Package scanner builds the application catalog from descriptor directories.
package scanner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"cyberdesk/internal/desktop"
	"cyberdesk/internal/logging"
	"cyberdesk/internal/models"
)

// EntryParser parses a single descriptor file
type EntryParser interface {
	Parse(path string) (models.AppEntry, error)
}

// Catalog is the result of one scan
type Catalog struct {
	Entries    []models.AppEntry
	Files      int           // Descriptor files considered
	Skipped    int           // Files that could not be turned into an entry
	Hidden     int           // Files rejected by NoDisplay
	Duplicates int           // Entries dropped by deduplication
	Fallback   bool          // Entries holds only the synthesized shell entry
	Err        error         // Aggregated per-file failures, nil if none
	Elapsed    time.Duration // Wall time of the scan
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// Scanner walks descriptor directories and builds catalogs
type Scanner struct {
	parser  EntryParser
	dirs    []string
	workers int
	log     *slog.Logger
}

// New creates a new Scanner. Directories are scanned in the given order;
// earlier directories win when two entries share a name and command.
func New(parser EntryParser, dirs []string) *Scanner {
	numWorkers := runtime.NumCPU() * 2 // IO-bound
	if numWorkers > 16 {
		numWorkers = 16
	}

	return &Scanner{
		parser:  parser,
		dirs:    append([]string(nil), dirs...),
		workers: numWorkers,
		log:     logging.Component("scanner"),
	}
}

// Scan reads every descriptor and returns a deduplicated catalog sorted by
// name. It never fails: unreadable files are counted and reported in
// Catalog.Err, and an empty result is replaced by the fallback entry.
func (s *Scanner) Scan() *Catalog {
	start := time.Now()
	c := &Catalog{}

	var errs *multierror.Error

	files, err := s.collectFiles()
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	c.Files = len(files)
	s.log.Debug("collected descriptors", "files", len(files), "dirs", len(s.dirs))

	var entries []models.AppEntry
	for _, r := range s.parseParallel(files) {
		switch {
		case r.err == nil:
			entries = append(entries, r.entry)
		case errors.Is(r.err, desktop.ErrHidden):
			c.Hidden++
		default:
			c.Skipped++
			errs = multierror.Append(errs, r.err)
		}
	}

	unique := Dedup(entries)
	c.Duplicates = len(entries) - len(unique)
	SortByName(unique)

	if len(unique) == 0 {
		unique = []models.AppEntry{models.FallbackEntry()}
		c.Fallback = true
	}

	c.Entries = unique
	c.Err = errs.ErrorOrNil()
	c.Elapsed = time.Since(start)

	s.log.Debug("scan finished",
		"entries", len(c.Entries),
		"skipped", c.Skipped,
		"hidden", c.Hidden,
		"duplicates", c.Duplicates,
		"fallback", c.Fallback,
		logging.Since(start))
	if c.Err != nil {
		s.log.Debug("scan diagnostics", "error", c.Err)
	}

	return c
}

// collectFiles lists visible *.desktop files of every existing directory,
// keeping directory order and sorting by file name within a directory.
func (s *Scanner) collectFiles() ([]string, error) {
	var files []string
	var errs *multierror.Error

	for _, dir := range s.dirs {
		if !isDir(dir) {
			s.log.Debug("skipping missing directory", "dir", dir)
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("read %s: %w", dir, err))
			continue
		}

		for _, e := range entries {
			name := e.Name()
			// hidden files are not matched, as with a shell glob
			if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, desktop.Extension) {
				continue
			}
			files = append(files, filepath.Join(dir, name))
		}
	}

	return files, errs.ErrorOrNil()
}

type parseResult struct {
	entry models.AppEntry
	err   error
}

// parseParallel parses files with a worker pool. Results keep the order of
// files regardless of which worker finished first.
func (s *Scanner) parseParallel(files []string) []parseResult {
	results := make([]parseResult, len(files))
	if len(files) == 0 {
		return results
	}

	numWorkers := s.workers
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				entry, err := s.parser.Parse(files[idx])
				results[idx] = parseResult{entry: entry, err: err}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Dedup keeps the first entry for every (Name, Exec) pair
func Dedup(entries []models.AppEntry) []models.AppEntry {
	seen := make(map[models.DedupKey]bool, len(entries))
	out := make([]models.AppEntry, 0, len(entries))

	for _, e := range entries {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		out = append(out, e)
	}

	return out
}

// SortByName orders entries by lowercased name. Entries with equal names
// keep their relative order.
func SortByName(entries []models.AppEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a filesystem scan.
type Options struct {
	// FollowSymlinks makes the walk traverse symbolic links to directories
	// as if they were those directories. fastwalk tracks already-visited
	// directories when following links, so cyclic link chains terminate.
	FollowSymlinks bool
	// Excludes contains regex patterns to exclude from the scan.
	Excludes []string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Scan walks the directory tree rooted at root and returns one flat Entry per
// reachable filesystem object. Traversal is parallel and emission order is
// unspecified. Hidden (dot-prefixed) entries are included.
//
// Per-entry errors (permission denied, entries vanishing mid-walk, broken
// links) are counted and skipped; the scan never fails as a whole because of
// one bad entry. The only fatal condition is an inaccessible root.
//
// Progress updates are sent to progressHook if provided.
func Scan(ctx context.Context, root string, opts Options, progressHook func(int64, int64)) (*Result, error) {
	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opts.Excludes))

	for _, p := range opts.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opts.ProgressInterval)

	conf := &fastwalk.Config{
		Follow: opts.FollowSymlinks,
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			collector.addError()

			return nil // Silently skip errors
		}

		if matched := shouldExcludeByPattern(path, excludeRegexes); matched {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		switch {
		case d.IsDir():
			collector.add(Entry{Path: path, IsDir: true})
		case d.Type()&fs.ModeSymlink != 0:
			collector.add(classifySymlink(path, opts.FollowSymlinks, collector))
		case d.Type().IsRegular():
			fileInfo, err := d.Info()
			if err != nil {
				collector.addError()

				return nil //nolint:nilerr // Intentionally skip errors during walk
			}

			collector.add(Entry{Path: path, Size: uint64(fileInfo.Size())})
		default:
			// Sockets, pipes and devices carry no accountable bytes but are
			// still reachable objects, so they get a zero-size record.
			collector.add(Entry{Path: path})
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return collector.finalize(), nil
}

// classifySymlink produces the Entry for a symbolic link. When links are not
// followed the link is a single non-recursed zero-size record. When they are,
// the record reflects the resolved target: directory targets become directory
// entries (fastwalk descends into them), file targets carry the target's size.
func classifySymlink(path string, follow bool, c *collector) Entry {
	if !follow {
		return Entry{Path: path}
	}

	info, err := os.Stat(path)
	if err != nil {
		// Broken link; keep the zero-size record.
		c.addError()

		return Entry{Path: path}
	}

	if info.IsDir() {
		return Entry{Path: path, IsDir: true}
	}

	return Entry{Path: path, Size: uint64(info.Size())}
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) bool {
	if len(patterns) == 0 {
		return false
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return true
		}
	}

	return false
}

package scanner

import "sync"

// Entry represents a single filesystem object discovered during a scan.
type Entry struct {
	// Path is the full path of the file or directory.
	Path string
	// Size is the apparent byte length for files and 0 for directories.
	// Aggregation into cumulative totals happens later, in the tree package.
	Size uint64
	// IsDir indicates whether the entry is a directory.
	IsDir bool
}

// Result holds the outcome of a completed scan.
type Result struct {
	// Entries contains one record per discovered object, in no particular order.
	Entries []Entry
	// Errors is the number of per-entry errors skipped during the walk.
	Errors int64
}

// collector accumulates entries from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	entries    []Entry
	totalBytes int64
	errorCount int64
}

func newCollector() *collector {
	return &collector{entries: make([]Entry, 0)}
}

// addError increments the error counter. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records a discovered file or directory. This operation is protected by a
// mutex since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) add(entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, entry)
	c.totalBytes += int64(entry.Size)
}

// snapshot returns the current entry and byte counts for progress reporting.
func (c *collector) snapshot() (entries, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.entries)), c.totalBytes
}

// finalize produces the final Result from the collected data.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Result{
		Entries: c.entries,
		Errors:  c.errorCount,
	}
}

package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when ScanEntry format changes.
const scanCacheSchemaVersion uint16 = 1

// ScanCache stores per-file scan summaries on disk, keyed by the SHA-256
// of the file content. A hit for an unchanged clean file lets `check` skip
// re-lexing it. Thread-safe for concurrent access.
type ScanCache struct {
	mu  sync.RWMutex
	dir string
}

// ScanEntry is the cached summary of one scan.
type ScanEntry struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Path       string
	TokenCount int
	ErrorCount int
	HadErrors  bool
}

// OpenScanCache initializes a cache at the standard location
// ($XDG_CACHE_HOME or ~/.cache, under the app name).
func OpenScanCache(app string) (*ScanCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenScanCacheAt(filepath.Join(base, app))
}

// OpenScanCacheAt initializes a cache rooted at an explicit directory.
func OpenScanCacheAt(dir string) (*ScanCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ScanCache{dir: dir}, nil
}

func (c *ScanCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "scans" subdirectory keeps the cache root easy to inspect and clear
	return filepath.Join(c.dir, "scans", hexKey+".mp")
}

// Put serializes and writes an entry to the cache, atomically.
func (c *ScanCache) Put(key [32]byte, entry *ScanEntry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes an entry from the cache. A missing entry or
// a schema mismatch is a miss, not an error.
func (c *ScanCache) Get(key [32]byte) (*ScanEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close cache file: %v\n", closeErr)
		}
	}()

	var entry ScanEntry
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&entry); err != nil {
		return nil, false, err
	}
	if entry.Schema != scanCacheSchemaVersion {
		return nil, false, nil
	}
	return &entry, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *ScanCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "scans"))
}

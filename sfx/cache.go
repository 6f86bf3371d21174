package sfx

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"os"
	"sync"

	"github.com/gnolang/sfxtree/internal/fasta"
	"github.com/pkg/errors"
)

type fileMetadata struct {
	Hash string
	Size int
}

type cacheEntry struct {
	Metadata fileMetadata
	Records  []fasta.Record
}

// recordCache keeps the parsed records of every input keyed by path, so
// unchanged files are not parsed again and a watcher can tell a real edit
// from a touch.
type recordCache struct {
	mutex   sync.Mutex
	entries map[string]cacheEntry
}

func newRecordCache() *recordCache {
	return &recordCache{entries: make(map[string]cacheEntry)}
}

// load returns the records of path, parsing the file only when its content
// differs from the cached entry.
func (c *recordCache) load(path string) ([]fasta.Record, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "read %s", path)
	}
	metadata := metadataOf(data)

	c.mutex.Lock()
	entry, exists := c.entries[path]
	c.mutex.Unlock()
	if exists && entry.Metadata == metadata {
		return entry.Records, true, nil
	}

	records, err := fasta.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, false, errors.Wrapf(err, "parse %s", path)
	}

	c.mutex.Lock()
	c.entries[path] = cacheEntry{Metadata: metadata, Records: records}
	c.mutex.Unlock()
	return records, false, nil
}

// stale reports whether any of paths is missing from the cache or no longer
// matches it.
func (c *recordCache) stale(paths []string) bool {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return true
		}
		c.mutex.Lock()
		entry, exists := c.entries[path]
		c.mutex.Unlock()
		if !exists || entry.Metadata != metadataOf(data) {
			return true
		}
	}
	return false
}

func metadataOf(data []byte) fileMetadata {
	sum := md5.Sum(data)
	return fileMetadata{Hash: hex.EncodeToString(sum[:]), Size: len(data)}
}

// Package snapshot persists graph documents in a pebble key-value store.
//
// Every document lives under the key "graph/<name>" as zstd-compressed JSON.
// A Store is safe for concurrent use to the extent pebble is: concurrent
// writers to the same name race and the last write wins.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/DataDog/zstd"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/katalvlaran/heapath/graphio"
)

// ErrNotFound indicates that no document is stored under the requested name.
var ErrNotFound = errors.New("snapshot: graph not found")

const keyPrefix = "graph/"

// Options configures Open.
type Options struct {
	InMemory         bool // back the store with an in-memory filesystem
	CompressionLevel int  // zstd level passed to CompressLevel
}

// Option mutates Options.
type Option func(*Options)

// WithInMemory keeps all data in memory (pebble vfs.NewMem); dir is only a
// name inside that filesystem. Intended for tests and the sample server.
func WithInMemory() Option {
	return func(o *Options) { o.InMemory = true }
}

// WithCompressionLevel sets the zstd compression level.
func WithCompressionLevel(level int) Option {
	return func(o *Options) { o.CompressionLevel = level }
}

// DefaultOptions returns on-disk storage with zstd's default level.
func DefaultOptions() Options {
	return Options{CompressionLevel: zstd.DefaultCompression}
}

// Store is a document catalog backed by pebble.
type Store struct {
	db    *pebble.DB
	level int
}

// Open opens (or creates) the store at dir.
func Open(dir string, opts ...Option) (*Store, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	po := &pebble.Options{}
	if cfg.InMemory {
		po.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dir, po)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", dir, err)
	}

	return &Store{db: db, level: cfg.CompressionLevel}, nil
}

// Put validates doc and stores it under doc.Name, replacing any previous version.
func (s *Store) Put(ctx context.Context, doc graphio.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	val, err := s.encode(doc)
	if err != nil {
		return err
	}
	if err = s.db.Set(key(doc.Name), val, pebble.Sync); err != nil {
		return fmt.Errorf("snapshot: put %q: %w", doc.Name, err)
	}

	return nil
}

// Get loads the document stored under name.
func (s *Store) Get(ctx context.Context, name string) (graphio.Document, error) {
	if err := ctx.Err(); err != nil {
		return graphio.Document{}, err
	}

	val, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return graphio.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return graphio.Document{}, fmt.Errorf("snapshot: get %q: %w", name, err)
	}
	defer closer.Close()

	// val is only valid until closer.Close; decode copies out of it.
	return s.decode(val)
}

// Delete removes name. Deleting a missing name reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("snapshot: delete %q: %w", name, err)
	}
	closer.Close()

	if err = s.db.Delete(key(name), pebble.Sync); err != nil {
		return fmt.Errorf("snapshot: delete %q: %w", name, err)
	}

	return nil
}

// List returns the stored names in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd(keyPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: list: %w", err)
	}

	names := make([]string, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		if err = ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		names = append(names, string(iter.Key()[len(keyPrefix):]))
	}
	if err = iter.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: list: %w", err)
	}

	return names, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(name string) []byte { return []byte(keyPrefix + name) }

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p string) []byte {
	end := []byte(p)
	end[len(end)-1]++

	return end
}

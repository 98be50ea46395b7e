// Package storage keeps a local journal of fetched API documents.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// Journal records raw response bodies under caller-chosen keys. Entries expire
// after the configured TTL.
type Journal interface {
	Close() error
	Record(key string, doc []byte) error
	Lookup(key string) ([]byte, bool, error)
	Keys() ([]string, error)
}

// Options controls retention characteristics for concrete journal implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 7 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewJournal creates the configured journal backend.
func NewJournal(typ, path string, opts Options) (Journal, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopJournal{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt journal requires a path")
		}
		j, err := openBolt(path, opts)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unsupported journal type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.EntryTTL <= 0 {
		opts.EntryTTL = defaultEntryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopJournal struct{}

func (noopJournal) Close() error                        { return nil }
func (noopJournal) Record(string, []byte) error         { return nil }
func (noopJournal) Lookup(string) ([]byte, bool, error) { return nil, false, nil }
func (noopJournal) Keys() ([]string, error)             { return nil, nil }

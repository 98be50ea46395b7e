package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBoltJournalRecordsAndExpiresDocuments(t *testing.T) {
	opts := Options{
		EntryTTL:        time.Minute,
		CleanupInterval: time.Hour,
	}

	j, err := openBolt(filepath.Join(t.TempDir(), "nested", "journal.db"), opts)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer j.Close()

	clock := time.Now()
	j.now = func() time.Time { return clock }

	if _, ok, err := j.Lookup("icon:1"); err != nil || ok {
		t.Fatalf("expected missing entry, ok=%v err=%v", ok, err)
	}

	if err := j.Record("icon:1", []byte(`{"icon_id":1}`)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	doc, ok, err := j.Lookup("icon:1")
	if err != nil || !ok {
		t.Fatalf("expected recorded entry, ok=%v err=%v", ok, err)
	}
	if string(doc) != `{"icon_id":1}` {
		t.Fatalf("unexpected document %q", doc)
	}

	clock = clock.Add(2 * time.Minute)

	if _, ok, err := j.Lookup("icon:1"); err != nil || ok {
		t.Fatalf("expected entry to expire, ok=%v err=%v", ok, err)
	}
}

func TestBoltJournalKeysSkipExpired(t *testing.T) {
	j, err := openBolt(filepath.Join(t.TempDir(), "journal.db"), Options{EntryTTL: time.Minute, CleanupInterval: time.Second})
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer j.Close()

	clock := time.Now()
	j.now = func() time.Time { return clock }

	if err := j.Record("style:flat", []byte(`{}`)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	clock = clock.Add(30 * time.Second)
	if err := j.Record("category:device", []byte(`{}`)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	clock = clock.Add(45 * time.Second)

	keys, err := j.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "category:device" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestBoltJournalRejectsEmptyKey(t *testing.T) {
	j, err := openBolt(filepath.Join(t.TempDir(), "journal.db"), normalizeOptions(Options{}))
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer j.Close()

	if err := j.Record("", []byte(`{}`)); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestNewJournalSupportsNoop(t *testing.T) {
	j, err := NewJournal("none", "", Options{})
	if err != nil {
		t.Fatalf("NewJournal none: %v", err)
	}
	if err := j.Record("x", nil); err != nil {
		t.Fatalf("noop journal Record: %v", err)
	}
	if _, ok, _ := j.Lookup("x"); ok {
		t.Fatalf("noop journal should never find entries")
	}
}

func TestNewJournalRejectsUnknownType(t *testing.T) {
	if _, err := NewJournal("redis", "x", Options{}); err == nil {
		t.Fatalf("expected unsupported type error")
	}
	if _, err := NewJournal("bbolt", " ", Options{}); err == nil {
		t.Fatalf("expected missing path error")
	}
}

package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adda-Baaj/iconfinder/internal/config"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		APIKey:                 "k",
		BaseURL:                baseURL,
		HTTPTimeout:            2 * time.Second,
		JournalType:            "bbolt",
		JournalPath:            filepath.Join(t.TempDir(), "journal.db"),
		JournalTTL:             time.Hour,
		JournalCleanupInterval: time.Hour,
	}
}

func TestFetchRecordsDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icons/12345" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"icon_id":12345}`))
	}))
	defer srv.Close()

	a, err := New(testConfig(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	doc, err := a.Fetch(context.Background(), "icon:12345", true, func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
		return c.GetIconDetails(ctx, 12345)
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if doc["icon_id"] != json.Number("12345") {
		t.Fatalf("unexpected document %v", doc)
	}

	j, err := a.Journal()
	if err != nil {
		t.Fatalf("Journal: %v", err)
	}
	body, ok, err := j.Lookup("icon:12345")
	if err != nil || !ok {
		t.Fatalf("expected journal entry, ok=%v err=%v", ok, err)
	}
	if string(body) != `{"icon_id":12345}` {
		t.Fatalf("unexpected journal body %s", body)
	}
}

func TestFetchWithoutRecordLeavesJournalClosed(t *testing.T) {
	a, err := New(testConfig(t, "http://unused"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = a.Fetch(context.Background(), "x", false, func(context.Context, *iconfinder.Client) (iconfinder.Document, error) {
		return iconfinder.Document{"ok": true}, nil
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if a.journal != nil {
		t.Fatalf("journal should not be opened without record")
	}
}

func TestFetchRequiresAPIKey(t *testing.T) {
	cfg := testConfig(t, "http://unused")
	cfg.APIKey = ""
	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	called := false
	_, err = a.Fetch(context.Background(), "x", false, func(context.Context, *iconfinder.Client) (iconfinder.Document, error) {
		called = true
		return nil, nil
	})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if called {
		t.Fatalf("call must not run without an API key")
	}
}

func TestFetchPropagatesCallError(t *testing.T) {
	a, err := New(testConfig(t, "http://unused"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	boom := errors.New("boom")

	_, err = a.Fetch(context.Background(), "x", true, func(context.Context, *iconfinder.Client) (iconfinder.Document, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestNewRejectsNilConfig(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Adda-Baaj/iconfinder/internal/config"
	"github.com/Adda-Baaj/iconfinder/internal/logger"
	"github.com/Adda-Baaj/iconfinder/internal/storage"
	"github.com/Adda-Baaj/iconfinder/pkg/httpclient"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

// ErrMissingAPIKey is returned when an API call is attempted without a key.
var ErrMissingAPIKey = errors.New("missing API key: set ICONFINDER_API_KEY")

// Call is a single client operation.
type Call func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error)

// App wires configuration, logging, the API client and the response journal.
// The journal is opened on first use so read-only commands never touch disk.
type App struct {
	cfg    *config.Config
	client *iconfinder.Client
	log    logger.Logger

	journalMu sync.Mutex
	journal   storage.Journal
}

// New builds the application runtime from config.
func New(cfg *config.Config, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	client := iconfinder.New(cfg.APIKey,
		iconfinder.WithBaseURL(cfg.BaseURL),
		iconfinder.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		iconfinder.WithLogger(log),
	)

	return &App{cfg: cfg, client: client, log: log}, nil
}

// Client exposes the configured API client.
func (a *App) Client() *iconfinder.Client { return a.client }

// Fetch runs call against the API. When record is set the returned document
// is written to the journal under key.
func (a *App) Fetch(ctx context.Context, key string, record bool, call Call) (iconfinder.Document, error) {
	if a.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	doc, err := call(ctx, a.client)
	if err != nil {
		a.log.ErrorObj("api call failed", "call", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return nil, err
	}

	if record {
		if err := a.record(key, doc); err != nil {
			return doc, fmt.Errorf("record %s: %w", key, err)
		}
	}
	return doc, nil
}

func (a *App) record(key string, doc iconfinder.Document) error {
	j, err := a.Journal()
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := j.Record(key, body); err != nil {
		return err
	}
	a.log.DebugObj("document recorded", "journal", map[string]any{
		"key":   key,
		"bytes": len(body),
	})
	return nil
}

// Journal opens the configured journal backend on first use.
func (a *App) Journal() (storage.Journal, error) {
	a.journalMu.Lock()
	defer a.journalMu.Unlock()

	if a.journal != nil {
		return a.journal, nil
	}
	j, err := storage.NewJournal(a.cfg.JournalType, a.cfg.JournalPath, storage.Options{
		EntryTTL:        a.cfg.JournalTTL,
		CleanupInterval: a.cfg.JournalCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}
	a.log.InfoObj("journal opened", "journal_config", map[string]any{
		"type":        a.cfg.JournalType,
		"path":        a.cfg.JournalPath,
		"ttl_seconds": int(a.cfg.JournalTTL.Seconds()),
	})
	a.journal = j
	return j, nil
}

// Close releases the journal if it was opened.
func (a *App) Close() {
	a.journalMu.Lock()
	defer a.journalMu.Unlock()

	if a.journal == nil {
		return
	}
	if err := a.journal.Close(); err != nil {
		a.log.ErrorObj("journal close failed", "error", err)
	}
	a.journal = nil
}

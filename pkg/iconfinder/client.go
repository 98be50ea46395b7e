package iconfinder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Adda-Baaj/iconfinder/pkg/httpclient"
)

// DefaultBaseURL is the Iconfinder v4 API root.
const DefaultBaseURL = "https://api.iconfinder.com/v4"

// UserAgent is sent with every request.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Ubuntu Chromium/73.0.3683.86 Chrome/73.0.3683.86 Safari/537.36"

// Document is a decoded API response. Its shape is defined by the remote
// endpoint and is never altered by the client. Numbers are json.Number.
// A successful call never returns a nil Document.
type Document map[string]any

var (
	errNotObject    = errors.New("response is not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON object")
)

// Client calls the Iconfinder v4 API. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
	log     Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. Timeouts belong to the transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base = strings.TrimSpace(base); base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = ensureLogger(log)
	}
}

// New builds a Client authenticated with apiKey. The key is not validated.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		headers: map[string]string{
			"user-agent":    UserAgent,
			"authorization": "Bearer " + apiKey,
		},
		log: noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(httpclient.DefaultTimeout)
	}
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}

// SearchIcons lists icons matching q.
func (c *Client) SearchIcons(ctx context.Context, q string, p SearchParams) (Document, error) {
	return c.get(ctx, "/icons/search", p.query(q))
}

// GetIconDetails fetches a single icon.
func (c *Client) GetIconDetails(ctx context.Context, iconID int) (Document, error) {
	return c.get(ctx, "/icons/"+strconv.Itoa(iconID), nil)
}

// GetIconsetIcons lists the icons of an iconset, most popular first.
// iconsetID is either the numeric id or the iconset identifier.
func (c *Client) GetIconsetIcons(ctx context.Context, iconsetID string, p IconsetIconsParams) (Document, error) {
	return c.get(ctx, "/iconsets/"+iconsetID+"/icons", p.query())
}

// GetPublicIconsets lists public iconsets, most recently published first.
func (c *Client) GetPublicIconsets(ctx context.Context, p IconsetListParams) (Document, error) {
	return c.get(ctx, "/iconsets", p.query())
}

// GetIconsetDetails fetches a single iconset by id or identifier.
func (c *Client) GetIconsetDetails(ctx context.Context, iconsetID string) (Document, error) {
	return c.get(ctx, "/iconsets/"+iconsetID, nil)
}

// GetCategoryIconsets lists the public iconsets of a category.
func (c *Client) GetCategoryIconsets(ctx context.Context, category string, p IconsetListParams) (Document, error) {
	return c.get(ctx, "/categories/"+category+"/iconsets", p.query())
}

// GetUserIconsets lists the public iconsets owned by a user.
func (c *Client) GetUserIconsets(ctx context.Context, userID string, p IconsetListParams) (Document, error) {
	return c.get(ctx, "/users/"+userID+"/iconsets", p.query())
}

// GetAuthorIconsets lists the public iconsets published by an author.
func (c *Client) GetAuthorIconsets(ctx context.Context, authorID int, p IconsetListParams) (Document, error) {
	return c.get(ctx, "/authors/"+strconv.Itoa(authorID)+"/iconsets", p.query())
}

// GetStyleIconsets lists the public iconsets drawn in a style.
func (c *Client) GetStyleIconsets(ctx context.Context, style string, p IconsetListParams) (Document, error) {
	return c.get(ctx, "/styles/"+style+"/iconsets", p.query())
}

// GetAuthorDetails fetches a single author.
func (c *Client) GetAuthorDetails(ctx context.Context, authorID int) (Document, error) {
	return c.get(ctx, "/authors/"+strconv.Itoa(authorID), nil)
}

// GetAllCategories pages through the category list.
func (c *Client) GetAllCategories(ctx context.Context, p ListParams) (Document, error) {
	return c.get(ctx, "/categories", p.query())
}

// GetCategoryDetails fetches a single category.
func (c *Client) GetCategoryDetails(ctx context.Context, category string) (Document, error) {
	return c.get(ctx, "/categories/"+category, nil)
}

// GetLicenseDetails fetches a single license.
func (c *Client) GetLicenseDetails(ctx context.Context, licenseID int) (Document, error) {
	return c.get(ctx, "/licenses/"+strconv.Itoa(licenseID), nil)
}

// GetAllStyles pages through the style list.
func (c *Client) GetAllStyles(ctx context.Context, p ListParams) (Document, error) {
	return c.get(ctx, "/styles", p.query())
}

// GetStyleDetails fetches a single style.
func (c *Client) GetStyleDetails(ctx context.Context, style string) (Document, error) {
	return c.get(ctx, "/styles/"+style, nil)
}

// GetUserDetails fetches a single user.
func (c *Client) GetUserDetails(ctx context.Context, userID string) (Document, error) {
	return c.get(ctx, "/users/"+userID, nil)
}

// get issues one GET and decodes the body regardless of status.
func (c *Client) get(ctx context.Context, path string, q query) (Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := c.baseURL + path + q.encode()

	resp, err := c.http.Get(ctx, url, c.Headers())
	if err != nil {
		return nil, fmt.Errorf("iconfinder: GET %s: %w", url, err)
	}
	c.log.DebugObj("iconfinder request", "request", map[string]any{
		"url":    url,
		"status": resp.StatusCode(),
	})

	doc, err := decodeDocument(resp.Body())
	if err != nil {
		return nil, &DecodeError{URL: url, StatusCode: resp.StatusCode(), Err: err}
	}
	return doc, nil
}

// decodeDocument decodes body as a single JSON object. Numbers are kept as
// json.Number so large ids re-encode exactly.
func decodeDocument(body []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	if doc == nil {
		return nil, errNotObject
	}
	return doc, nil
}

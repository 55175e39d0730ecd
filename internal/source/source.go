// Package source fetches the ranking payload and coerces it into model.Items.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"beerrank-cli/internal/model"
)

const (
	DefaultURL     = "https://mysafeinfo.com/api/data?list=usfavoritebeers&format=json&case=default"
	DefaultTimeout = 30 * time.Second

	maxBodyBytes = 16 << 20
)

var ErrNotArray = errors.New("payload is not a JSON array")

// Loader delivers the full item list in one call.
type Loader interface {
	FetchAll(ctx context.Context) ([]model.Item, error)
}

// Fields names the record keys that carry the name and the two percentages.
type Fields struct {
	Name       string `yaml:"name"`
	Fame       string `yaml:"fame"`
	Popularity string `yaml:"popularity"`
}

func DefaultFields() Fields {
	return Fields{Name: "DrinkName", Fame: "FamePct", Popularity: "PopularityPct"}
}

func (f Fields) withDefaults() Fields {
	d := DefaultFields()
	if strings.TrimSpace(f.Name) == "" {
		f.Name = d.Name
	}
	if strings.TrimSpace(f.Fame) == "" {
		f.Fame = d.Fame
	}
	if strings.TrimSpace(f.Popularity) == "" {
		f.Popularity = d.Popularity
	}
	return f
}

type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	fields     Fields
}

type Option func(*Client)

func WithURL(url string) Option {
	return func(c *Client) {
		if strings.TrimSpace(url) != "" {
			c.url = url
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			// Copy so a client passed to WithHTTPClient is never modified.
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithHTTPClient replaces the transport client. A later WithTimeout applies to
// a copy of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithFields(f Fields) Option {
	return func(c *Client) { c.fields = f.withDefaults() }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		url:        DefaultURL,
		userAgent:  "beerrank",
		fields:     DefaultFields(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) URL() string { return c.url }

func (c *Client) FetchAll(ctx context.Context) ([]model.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch items: unexpected status: %d", resp.StatusCode)
	}

	return Decode(io.LimitReader(resp.Body, maxBodyBytes), c.fields)
}

// FileLoader reads the same payload shape from disk.
type FileLoader struct {
	Path   string
	Fields Fields
}

func (l FileLoader) FetchAll(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open items file: %w", err)
	}
	defer f.Close()
	return Decode(io.LimitReader(f, maxBodyBytes), l.Fields.withDefaults())
}

// Open picks a loader for src: http(s) URLs are fetched, anything else is read
// as a local file. An empty src means DefaultURL.
func Open(src string, opts ...Option) Loader {
	src = strings.TrimSpace(src)
	if src == "" || isURL(src) {
		return NewClient(append([]Option{WithURL(src)}, opts...)...)
	}
	c := NewClient(opts...)
	return FileLoader{Path: src, Fields: c.fields}
}

func isURL(s string) bool {
	ls := strings.ToLower(s)
	return strings.HasPrefix(ls, "http://") || strings.HasPrefix(ls, "https://")
}

// Decode reads a JSON array of records. Elements that are not objects and
// records without a usable name are dropped one by one. Percentages may be numbers or numeric strings;
// anything else becomes 0.
func Decode(r io.Reader, fields Fields) ([]model.Item, error) {
	fields = fields.withDefaults()

	var raw json.RawMessage
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("decode items: %w", ErrNotArray)
	}

	var records []any
	rd := json.NewDecoder(strings.NewReader(trimmed))
	rd.UseNumber()
	if err := rd.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]model.Item, 0, len(records))
	for _, el := range records {
		rec, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name, ok := rec[fields.Name].(string)
		if !ok {
			continue
		}
		it, ok := model.NewItem(name, coercePct(rec[fields.Fame]), coercePct(rec[fields.Popularity]))
		if !ok {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func coercePct(v any) float64 {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(t), "%"), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Package http provides an HTTP-based implementation of drugstock.Fetcher.
package http

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/drugstock/drugstock"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Default request headers. The Accept and X-Requested-With values mimic
// the site's own AJAX calls; the server still answers with HTML.
const (
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultAccept        = "application/json"
	DefaultRequestedWith = "XMLHttpRequest"
)

// Ensure Fetcher implements drugstock.Fetcher at compile time.
var _ drugstock.Fetcher = (*Fetcher)(nil)

// Config holds the request settings for a Fetcher. Zero values fall back
// to the package defaults.
type Config struct {
	UserAgent     string
	Accept        string
	RequestedWith string

	// Timeout bounds the whole request including reading the body.
	Timeout time.Duration

	// MaxBodySize caps the decoded page size. A larger page fails the
	// fetch instead of being truncated. Zero means unlimited.
	MaxBodySize int64
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		UserAgent:     DefaultUserAgent,
		Accept:        DefaultAccept,
		RequestedWith: DefaultRequestedWith,
		Timeout:       DefaultFetchTimeout,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.Accept == "" {
		c.Accept = d.Accept
	}
	if c.RequestedWith == "" {
		c.RequestedWith = d.RequestedWith
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	return c
}

// Fetcher retrieves product pages with a single HTTP GET. It does not
// execute JavaScript and never retries.
type Fetcher struct {
	client *http.Client
	config Config
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(config Config) *Fetcher {
	config = config.withDefaults()
	return &Fetcher{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
	}
}

// Config returns the effective configuration.
func (f *Fetcher) Config() Config {
	return f.config
}

// Fetch retrieves the page at url and returns its body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &drugstock.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", f.config.Accept)
	req.Header.Set("X-Requested-With", f.config.RequestedWith)
	// Setting this by hand turns off the transport's transparent gzip,
	// so decodeBody handles every advertised encoding.
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &drugstock.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &drugstock.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	text, err := decodeBody(resp.Body, resp.Header.Get("Content-Encoding"), resp.Header.Get("Content-Type"), f.config.MaxBodySize)
	if err != nil {
		return "", &drugstock.FetchError{URL: url, Err: err}
	}
	return text, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// decodeBody undoes the content encodings and converts the declared or
// sniffed charset to UTF-8. Encodings are listed in the order they were
// applied, so they are removed last to first. A positive maxSize bounds the
// decoded result.
func decodeBody(r io.Reader, contentEncoding, contentType string, maxSize int64) (string, error) {
	encodings := strings.Split(contentEncoding, ",")
	for i := len(encodings) - 1; i >= 0; i-- {
		switch enc := strings.ToLower(strings.TrimSpace(encodings[i])); enc {
		case "", "identity":
		case "gzip", "x-gzip":
			gz, err := gzip.NewReader(r)
			if err != nil {
				return "", err
			}
			defer gz.Close()
			r = gz
		case "deflate":
			fl := flate.NewReader(r)
			defer fl.Close()
			r = fl
		case "br":
			r = brotli.NewReader(r)
		default:
			return "", fmt.Errorf("unsupported content encoding %q", enc)
		}
	}

	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", err
	}

	if maxSize > 0 {
		utf8Reader = io.LimitReader(utf8Reader, maxSize+1)
	}
	b, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", err
	}
	if maxSize > 0 && int64(len(b)) > maxSize {
		return "", fmt.Errorf("response body exceeds %d bytes", maxSize)
	}
	return string(b), nil
}

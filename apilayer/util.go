package apilayer

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/date"
)

// getJSON performs an authenticated GET request and unmarshals the JSON
// response body into data. A non-200 status is an error.
func (c *Client) getJSON(addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return json.Unmarshal(body, data)
}

// diskCache caches HTTP responses on disk. The cache key embeds the current
// day, so entries expire daily: one rate lookup per currency per day.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("rates-%x", sha1.Sum([]byte(date.Today().String()+" "+req.Method+" "+req.URL.String())))

	if resp, err := c.read(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	analysis.Log().Debug().Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("GET")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.write(key, resp); err != nil {
		analysis.Log().Debug().Err(err).Msg("cache write ignored")
	}
	return resp, nil
}

// read retrieves a cached response from disk.
func (c *diskCache) read(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// write stores a response to the disk cache, leaving resp readable.
func (c *diskCache) write(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0o644)
}

// newCachingClient returns an http.Client with a daily-expiring disk cache
// and the given request timeout.
func newCachingClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &diskCache{base: http.DefaultTransport},
	}
}

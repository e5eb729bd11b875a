// Package finazon is a client for the api.finazon.io US stocks price API,
// used to fetch the latest prices of the tickers the user tracks.
package finazon

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
)

// DefaultBaseURL is the price endpoint root.
const DefaultBaseURL = "https://api.finazon.io/latest/finazon/us_stocks_essential"

// Client calls the finazon price API. The zero value is not usable; use New.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client with the production endpoint, an explicit timeout, and
// no retries: a failed lookup stays failed and the ticker is omitted.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Price returns the latest price of one ticker. Any transport error, non-200
// status, or unexpected response shape yields an error wrapping
// analysis.ErrLookupFailed.
func (c *Client) Price(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/price?ticker=%s&apikey=%s", c.BaseURL, url.QueryEscape(ticker), url.QueryEscape(c.APIKey))

	resp, err := c.HTTPClient.Get(addr)
	if err != nil {
		return 0, fmt.Errorf("%w: price %s: %v", analysis.ErrLookupFailed, ticker, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: price %s: %v", analysis.ErrLookupFailed, ticker, err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: price %s: %v", analysis.ErrLookupFailed, ticker, resp.Status)
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return 0, fmt.Errorf("%w: price %s: %v", analysis.ErrLookupFailed, ticker, err)
	}
	jval, err := jsonpath.Get("$.p", jobj)
	if err != nil {
		return 0, fmt.Errorf("%w: price %s: no price in response: %v", analysis.ErrLookupFailed, ticker, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: price %s: price is not a number: %v", analysis.ErrLookupFailed, ticker, jval)
	}
	return val, nil
}

// Prices fetches the latest price of each tracked ticker. Tickers that fail
// to quote are logged and omitted.
func (c *Client) Prices(tickers []string) []analysis.StockPrice {
	prices := make([]analysis.StockPrice, 0, len(tickers))
	for _, ticker := range tickers {
		analysis.Log().Debug().Str("ticker", ticker).Msg("fetching stock price")
		p, err := c.Price(ticker)
		if err != nil {
			analysis.Log().Info().Str("ticker", ticker).Err(err).Msg("price omitted")
			continue
		}
		prices = append(prices, analysis.StockPrice{Stock: ticker, Price: p})
	}
	return prices
}

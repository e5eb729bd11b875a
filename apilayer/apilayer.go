// Package apilayer is a client for the api.apilayer.com currency_data API,
// used to convert foreign amounts to rubles and to quote the currencies the
// user tracks.
package apilayer

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
)

// DefaultBaseURL is the currency_data endpoint root.
const DefaultBaseURL = "https://api.apilayer.com/currency_data"

// Client calls the currency_data API. The zero value is not usable; use New.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client with the production endpoint, a daily-expiring disk
// response cache, an explicit timeout, and no retries: a failed lookup stays
// failed and the caller skips the record.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: newCachingClient(10 * time.Second),
	}
}

// Convert converts the amount from the given currency to rubles, rounded to 2
// decimal places. Any transport error, non-200 status, or unexpected response
// shape yields an error wrapping analysis.ErrLookupFailed.
func (c *Client) Convert(currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/convert?to=%s&from=%s&amount=%s",
		c.BaseURL, analysis.HomeCurrency, url.QueryEscape(currency), amount.String())
	analysis.Log().Debug().Str("from", currency).Stringer("amount", amount).Msg("converting to rubles")

	var jobj any
	if err := c.getJSON(addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: convert %s: %v", analysis.ErrLookupFailed, currency, err)
	}
	jval, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: convert %s: no result in response: %v", analysis.ErrLookupFailed, currency, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: convert %s: result is not a number: %v", analysis.ErrLookupFailed, currency, jval)
	}
	rounded := decimal.NewFromFloat(val).Round(2)
	analysis.Log().Debug().Str("from", currency).Float64("raw", val).Stringer("rub", rounded).Msg("converted")
	return rounded, nil
}

// QuotesRUB fetches, for each tracked currency, its quote against the ruble
// from the bulk live endpoint. The response quotes the source currency
// against many others; only the RUB pair is kept. Currencies that fail to
// quote are logged and omitted.
func (c *Client) QuotesRUB(currencies []string) []analysis.CurrencyRate {
	quotes := make([]analysis.CurrencyRate, 0, len(currencies))
	for _, currency := range currencies {
		rate, err := c.liveRUB(currency)
		if err != nil {
			analysis.Log().Info().Str("currency", currency).Err(err).Msg("quote omitted")
			continue
		}
		quotes = append(quotes, analysis.CurrencyRate{Currency: currency, Rate: rate})
	}
	return quotes
}

// liveRUB returns the CURRUB rate from the live endpoint for one currency.
func (c *Client) liveRUB(currency string) (float64, error) {
	addr := fmt.Sprintf("%s/live?source=%s", c.BaseURL, url.QueryEscape(currency))

	var jobj any
	if err := c.getJSON(addr, &jobj); err != nil {
		return 0, fmt.Errorf("%w: live %s: %v", analysis.ErrLookupFailed, currency, err)
	}
	jval, err := jsonpath.Get("$.quotes", jobj)
	if err != nil {
		return 0, fmt.Errorf("%w: live %s: no quotes in response: %v", analysis.ErrLookupFailed, currency, err)
	}
	pairs, ok := jval.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: live %s: quotes is not an object", analysis.ErrLookupFailed, currency)
	}
	for pair, rate := range pairs {
		if !strings.HasSuffix(pair, analysis.HomeCurrency) {
			continue
		}
		val, ok := rate.(float64)
		if !ok {
			return 0, fmt.Errorf("%w: live %s: rate of %s is not a number", analysis.ErrLookupFailed, currency, pair)
		}
		return val, nil
	}
	return 0, fmt.Errorf("%w: live %s: no %s pair in response", analysis.ErrLookupFailed, currency, analysis.HomeCurrency)
}

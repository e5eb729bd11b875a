package finazon

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestPrice(t *testing.T) {
	t.Run("latest price", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("ticker"); got != "AAPL" {
				t.Errorf("got ticker=%q, want AAPL", got)
			}
			if got := r.URL.Query().Get("apikey"); got != "test-key" {
				t.Errorf("got apikey=%q, want test-key", got)
			}
			fmt.Fprint(w, `{"p": 156.3}`)
		}))
		defer srv.Close()

		got, err := testClient(srv).Price("AAPL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 156.3 {
			t.Errorf("got %v, want 156.3", got)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := testClient(srv).Price("AAPL")
		if !errors.Is(err, analysis.ErrLookupFailed) {
			t.Errorf("got error %v, want ErrLookupFailed", err)
		}
	})

	t.Run("missing price field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"s": "no_data"}`)
		}))
		defer srv.Close()

		_, err := testClient(srv).Price("AAPL")
		if !errors.Is(err, analysis.ErrLookupFailed) {
			t.Errorf("got error %v, want ErrLookupFailed", err)
		}
	})
}

func TestPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("ticker") {
		case "AAPL":
			fmt.Fprint(w, `{"p": 156.3}`)
		case "AMZN":
			fmt.Fprint(w, `{"p": 3173.18}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got := testClient(srv).Prices([]string{"AAPL", "NOPE", "AMZN"})
	if len(got) != 2 {
		t.Fatalf("got %d prices, want 2", len(got))
	}
	if got[0].Stock != "AAPL" || got[0].Price != 156.3 {
		t.Errorf("got %v, want AAPL at 156.3", got[0])
	}
	if got[1].Stock != "AMZN" || got[1].Price != 3173.18 {
		t.Errorf("got %v, want AMZN at 3173.18", got[1])
	}
}

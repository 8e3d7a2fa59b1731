package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartJSON(symbol string, price float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"currency":"USD","symbol":"%s","regularMarketPrice":%f}}],"error":null}}`, symbol, price)
}

func TestGetStockPriceConSufijo(t *testing.T) {
	t.Setenv("STOCK_SUFFIX", ".NS")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v8/finance/chart/RELIANCE.NS" {
			w.Write([]byte(chartJSON("RELIANCE.NS", 2500.5)))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	original := stockAPIBaseURL
	stockAPIBaseURL = server.URL
	defer func() { stockAPIBaseURL = original }()

	price, err := GetStockPrice("RELIANCE")
	require.NoError(t, err)
	assert.InDelta(t, 2500.5, price, 0.001)
}

func TestGetStockPriceFallbackAlSimboloBase(t *testing.T) {
	t.Setenv("STOCK_SUFFIX", ".NS")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// El símbolo con sufijo no existe en este mercado
		if r.URL.Path == "/v8/finance/chart/AAPL" {
			w.Write([]byte(chartJSON("AAPL", 189.3)))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	original := stockAPIBaseURL
	stockAPIBaseURL = server.URL
	defer func() { stockAPIBaseURL = original }()

	price, err := GetStockPrice("AAPL")
	require.NoError(t, err)
	assert.InDelta(t, 189.3, price, 0.001)
}

func TestGetStockPriceSinDatos(t *testing.T) {
	t.Setenv("STOCK_SUFFIX", "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer server.Close()

	original := stockAPIBaseURL
	stockAPIBaseURL = server.URL
	defer func() { stockAPIBaseURL = original }()

	_, err := GetStockPrice("NADA")
	assert.Error(t, err)
}

func TestGetStockPriceSinCampoDePrecio(t *testing.T) {
	t.Setenv("STOCK_SUFFIX", "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[{"meta":{"currency":"USD","symbol":"AAPL"}}],"error":null}}`))
	}))
	defer server.Close()

	original := stockAPIBaseURL
	stockAPIBaseURL = server.URL
	defer func() { stockAPIBaseURL = original }()

	_, err := GetStockPrice("AAPL")
	assert.Error(t, err)
}

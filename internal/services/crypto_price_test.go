package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinGeckoID(t *testing.T) {
	cases := []struct {
		ticker string
		want   string
	}{
		{"BTC", "bitcoin"},
		{"btc", "bitcoin"},
		{"ETH", "ethereum"},
		{"MATIC", "polygon"},
		{"AVAX", "avalanche-2"},
		// Los tickers desconocidos pasan en minúsculas tal cual
		{"XYZ", "xyz"},
		{"DogeCoin", "dogecoin"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CoinGeckoID(tc.ticker), "ticker %s", tc.ticker)
	}
}

func TestGetCryptoPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":45000.5}}`))
	}))
	defer server.Close()

	original := coingeckoBaseURL
	coingeckoBaseURL = server.URL
	defer func() { coingeckoBaseURL = original }()

	price, err := GetCryptoPrice("BTC")
	require.NoError(t, err)
	assert.InDelta(t, 45000.5, price, 0.001)
}

func TestGetCryptoPriceMonedaDesconocida(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CoinGecko responde un objeto vacío para ids desconocidos
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	original := coingeckoBaseURL
	coingeckoBaseURL = server.URL
	defer func() { coingeckoBaseURL = original }()

	_, err := GetCryptoPrice("XYZ")
	assert.Error(t, err)
}

func TestGetCryptoPriceSinCampoUSD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{}}`))
	}))
	defer server.Close()

	original := coingeckoBaseURL
	coingeckoBaseURL = server.URL
	defer func() { coingeckoBaseURL = original }()

	_, err := GetCryptoPrice("BTC")
	assert.Error(t, err)
}

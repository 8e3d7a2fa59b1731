package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FpProDev/FP_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadServerURL devuelve la URL de un servidor ya cerrado, para simular
// fallos de red
func deadServerURL() string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}

func TestResolvePriceTickerVacio(t *testing.T) {
	_, ok := ResolvePrice(models.AssetTypeStock, "   ")
	assert.False(t, ok)
}

func TestResolvePriceTipoDesconocido(t *testing.T) {
	_, ok := ResolvePrice("Bond", "AAPL")
	assert.False(t, ok)
}

func TestResolvePriceFalloDeRedEsAusencia(t *testing.T) {
	original := coingeckoBaseURL
	coingeckoBaseURL = deadServerURL()
	defer func() { coingeckoBaseURL = original }()

	// Un fallo de red nunca llega al caller como error, solo como ausencia
	_, ok := ResolvePrice(models.AssetTypeCrypto, "BTC")
	assert.False(t, ok)
}

func TestResolveInvestmentPrices(t *testing.T) {
	cryptoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":120}}`))
	}))
	defer cryptoServer.Close()

	originalCrypto := coingeckoBaseURL
	originalStock := stockAPIBaseURL
	coingeckoBaseURL = cryptoServer.URL
	stockAPIBaseURL = deadServerURL()
	defer func() {
		coingeckoBaseURL = originalCrypto
		stockAPIBaseURL = originalStock
	}()

	investments := []models.Investment{
		{AssetType: models.AssetTypeCrypto, Ticker: "BTC", Quantity: 10, BuyPrice: 100},
		{AssetType: models.AssetTypeStock, Ticker: "AAPL", Quantity: 5, BuyPrice: 50},
	}

	ResolveInvestmentPrices(investments)

	// El fallo de la segunda no afecta a la primera
	require.NotNil(t, investments[0].CurrentPrice)
	assert.InDelta(t, 120, *investments[0].CurrentPrice, 0.001)
	assert.Nil(t, investments[1].CurrentPrice)

	summary := SummarizePortfolio(investments)
	assert.InDelta(t, 1250, summary.TotalInvested, 0.001)
	assert.InDelta(t, 1450, summary.CurrentValue, 0.001)
	assert.InDelta(t, 200, summary.GainLoss, 0.001)
	assert.InDelta(t, 16.0, summary.GainLossPct, 0.001)
}

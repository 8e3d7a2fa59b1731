package services

import (
	"testing"

	"github.com/FpProDev/FP_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuateInvestmentConPrecio(t *testing.T) {
	inv := models.Investment{
		AssetType: models.AssetTypeStock,
		Ticker:    "AAPL",
		Quantity:  10,
		BuyPrice:  100,
	}

	ValuateInvestment(&inv, 120, true)

	require.NotNil(t, inv.CurrentPrice)
	require.NotNil(t, inv.GainLoss)
	require.NotNil(t, inv.GainLossPct)
	assert.InDelta(t, 120, *inv.CurrentPrice, 0.001)
	assert.InDelta(t, 200, *inv.GainLoss, 0.001)
	assert.InDelta(t, 20, *inv.GainLossPct, 0.001)
}

func TestValuateInvestmentSinPrecio(t *testing.T) {
	inv := models.Investment{
		AssetType: models.AssetTypeCrypto,
		Ticker:    "BTC",
		Quantity:  5,
		BuyPrice:  50,
	}

	ValuateInvestment(&inv, 0, false)

	// Sin precio no se fabrica ninguna cifra
	assert.Nil(t, inv.CurrentPrice)
	assert.Nil(t, inv.GainLoss)
	assert.Nil(t, inv.GainLossPct)
	assert.InDelta(t, 250, inv.Invested(), 0.001)
}

func TestValuateInvestmentInvertidoCero(t *testing.T) {
	inv := models.Investment{Quantity: 0, BuyPrice: 0}

	ValuateInvestment(&inv, 100, true)

	require.NotNil(t, inv.GainLossPct)
	assert.InDelta(t, 0, *inv.GainLossPct, 0.001)
}

func TestSummarizePortfolioMixto(t *testing.T) {
	resolved := models.Investment{Quantity: 10, BuyPrice: 100}
	ValuateInvestment(&resolved, 120, true)

	unresolved := models.Investment{Quantity: 5, BuyPrice: 50}
	ValuateInvestment(&unresolved, 0, false)

	summary := SummarizePortfolio([]models.Investment{resolved, unresolved})

	assert.InDelta(t, 1250, summary.TotalInvested, 0.001)
	assert.InDelta(t, 1450, summary.CurrentValue, 0.001)
	assert.InDelta(t, 200, summary.GainLoss, 0.001)
	assert.InDelta(t, 16.0, summary.GainLossPct, 0.001)
	assert.Equal(t, "USD", summary.Currency)
}

func TestSummarizePortfolioSinPrecioUsaInvertido(t *testing.T) {
	inv := models.Investment{Quantity: 5, BuyPrice: 50}
	ValuateInvestment(&inv, 0, false)

	summary := SummarizePortfolio([]models.Investment{inv})

	// La posición sin precio aporta su monto invertido al valor actual:
	// no suma ganancia ni pérdida, pero tampoco desaparece del total
	assert.InDelta(t, 250, summary.TotalInvested, 0.001)
	assert.InDelta(t, 250, summary.CurrentValue, 0.001)
	assert.InDelta(t, 0, summary.GainLoss, 0.001)
	assert.InDelta(t, 0, summary.GainLossPct, 0.001)
}

func TestSummarizePortfolioVacio(t *testing.T) {
	summary := SummarizePortfolio([]models.Investment{})

	assert.InDelta(t, 0, summary.TotalInvested, 0.001)
	assert.InDelta(t, 0, summary.CurrentValue, 0.001)
	assert.InDelta(t, 0, summary.GainLoss, 0.001)
	assert.InDelta(t, 0, summary.GainLossPct, 0.001)
}

func TestSummarizePortfolioOrdenIndependiente(t *testing.T) {
	a := models.Investment{Quantity: 10, BuyPrice: 100}
	ValuateInvestment(&a, 120, true)
	b := models.Investment{Quantity: 5, BuyPrice: 50}
	ValuateInvestment(&b, 0, false)
	c := models.Investment{Quantity: 2, BuyPrice: 300}
	ValuateInvestment(&c, 275.5, true)

	original := SummarizePortfolio([]models.Investment{a, b, c})
	permutado := SummarizePortfolio([]models.Investment{c, a, b})

	assert.InDelta(t, original.TotalInvested, permutado.TotalInvested, 1e-9)
	assert.InDelta(t, original.CurrentValue, permutado.CurrentValue, 1e-9)
	assert.InDelta(t, original.GainLoss, permutado.GainLoss, 1e-9)
	assert.InDelta(t, original.GainLossPct, permutado.GainLossPct, 1e-9)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateInvestmentRequest {
	return CreateInvestmentRequest{
		AssetType: AssetTypeCrypto,
		Ticker:    "btc",
		Quantity:  0.5,
		BuyPrice:  40000,
		BuyDate:   "2025-06-15",
	}
}

func TestNewInvestmentNormalizaTicker(t *testing.T) {
	req := validRequest()
	req.Ticker = "  btc  "

	inv, err := NewInvestment("user-1", req)
	require.NoError(t, err)

	assert.Equal(t, "BTC", inv.Ticker)
	assert.Equal(t, "user-1", inv.UserID)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "2025-06-15", inv.BuyDate.Format("2006-01-02"))
	assert.InDelta(t, 20000, inv.Invested(), 0.001)
}

func TestNewInvestmentValidaciones(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateInvestmentRequest)
		wantErr error
	}{
		{
			name:    "tipo de activo desconocido",
			mutate:  func(r *CreateInvestmentRequest) { r.AssetType = "Bond" },
			wantErr: ErrInvalidAssetType,
		},
		{
			name:    "ticker vacío",
			mutate:  func(r *CreateInvestmentRequest) { r.Ticker = "   " },
			wantErr: ErrEmptyTicker,
		},
		{
			name:    "cantidad cero",
			mutate:  func(r *CreateInvestmentRequest) { r.Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "cantidad negativa",
			mutate:  func(r *CreateInvestmentRequest) { r.Quantity = -1 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "precio de compra cero",
			mutate:  func(r *CreateInvestmentRequest) { r.BuyPrice = 0 },
			wantErr: ErrInvalidBuyPrice,
		},
		{
			name:    "fecha inválida",
			mutate:  func(r *CreateInvestmentRequest) { r.BuyDate = "15/06/2025" },
			wantErr: ErrInvalidBuyDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := NewInvestment("user-1", req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

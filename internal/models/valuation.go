package models

import "time"

// PortfolioSummary es el resumen del portafolio del usuario. Se deriva de
// las inversiones valuadas y nunca se calcula promediando porcentajes por
// posición: el porcentaje sale de los totales.
type PortfolioSummary struct {
	TotalInvested float64 `json:"total_invested"` // Total invertido históricamente
	CurrentValue  float64 `json:"current_value"`  // Valor actual de todas las posiciones
	GainLoss      float64 `json:"gain_loss"`      // Ganancia o pérdida total
	GainLossPct   float64 `json:"gain_loss_pct"`  // Porcentaje sobre lo invertido
	Currency      string  `json:"currency"`       // Moneda (USD)
}

// PriceResponse es la respuesta de los endpoints de precio crudo.
// Price queda en null cuando la cotización no está disponible.
type PriceResponse struct {
	Ticker    string   `json:"ticker"`
	Price     *float64 `json:"price"`
	Timestamp string   `json:"timestamp"`
}

// PortfolioSnapshot guarda el resumen de un día para el historial de
// rendimiento del usuario
type PortfolioSnapshot struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	TotalInvested float64   `json:"total_invested"`
	CurrentValue  float64   `json:"current_value"`
	GainLoss      float64   `json:"gain_loss"`
	GainLossPct   float64   `json:"gain_loss_pct"`
	CreatedAt     time.Time `json:"created_at"`
}

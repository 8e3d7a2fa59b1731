package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tipos de activo soportados
const (
	AssetTypeStock  = "Stock"
	AssetTypeCrypto = "Crypto"
)

// Errores de validación de una inversión. Se devuelven al cliente como 400,
// nunca llegan al motor de valuación datos que violen estos invariantes.
var (
	ErrInvalidAssetType = errors.New("el tipo de activo debe ser Stock o Crypto")
	ErrEmptyTicker      = errors.New("el ticker no puede estar vacío")
	ErrInvalidQuantity  = errors.New("la cantidad debe ser mayor que 0")
	ErrInvalidBuyPrice  = errors.New("el precio de compra debe ser mayor que 0")
	ErrInvalidBuyDate   = errors.New("la fecha de compra debe tener formato YYYY-MM-DD")
)

// Investment representa la compra de una cantidad de un activo (acción o
// criptomoneda) a un precio de compra, perteneciente a un único usuario.
type Investment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AssetType string    `json:"asset_type"`
	Ticker    string    `json:"ticker"`
	Quantity  float64   `json:"quantity"`
	BuyPrice  float64   `json:"buy_price"`
	BuyDate   time.Time `json:"buy_date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Campos derivados del precio de mercado, recalculados en cada lectura.
	// Son punteros: si no hay precio disponible quedan en null, nunca se
	// inventa una cifra.
	CurrentPrice *float64 `json:"current_price"`
	GainLoss     *float64 `json:"gain_loss"`
	GainLossPct  *float64 `json:"gain_loss_pct"`
}

// Invested devuelve el monto invertido, siempre calculable
func (i *Investment) Invested() float64 {
	return i.Quantity * i.BuyPrice
}

type CreateInvestmentRequest struct {
	AssetType string  `json:"asset_type" binding:"required,oneof=Stock Crypto"`
	Ticker    string  `json:"ticker" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	BuyPrice  float64 `json:"buy_price" binding:"required,gt=0"`
	BuyDate   string  `json:"buy_date" binding:"required"`
	Note      string  `json:"note,omitempty"`
}

type UpdateInvestmentRequest struct {
	Quantity *float64 `json:"quantity" binding:"omitempty,gt=0"`
	BuyPrice *float64 `json:"buy_price" binding:"omitempty,gt=0"`
}

// NewInvestment valida y normaliza los datos de entrada y construye la
// inversión. El ticker se guarda siempre en mayúsculas y sin espacios.
func NewInvestment(userID string, req CreateInvestmentRequest) (*Investment, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, ErrEmptyTicker
	}

	if req.AssetType != AssetTypeStock && req.AssetType != AssetTypeCrypto {
		return nil, ErrInvalidAssetType
	}

	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if req.BuyPrice <= 0 {
		return nil, ErrInvalidBuyPrice
	}

	buyDate, err := time.Parse("2006-01-02", req.BuyDate)
	if err != nil {
		return nil, ErrInvalidBuyDate
	}

	return &Investment{
		ID:        uuid.NewString(),
		UserID:    userID,
		AssetType: req.AssetType,
		Ticker:    ticker,
		Quantity:  req.Quantity,
		BuyPrice:  req.BuyPrice,
		BuyDate:   buyDate,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}, nil
}

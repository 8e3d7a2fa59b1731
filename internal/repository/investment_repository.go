package repository

import (
	"database/sql"
	"errors"

	"github.com/FpProDev/FP_Api.git/internal/models"
)

// ErrInvestmentNotFound se devuelve cuando la inversión no existe para el
// usuario autenticado. Un intento de acceder a la inversión de otro usuario
// produce exactamente el mismo error: nunca se distingue "ajena" de
// "inexistente".
var ErrInvestmentNotFound = errors.New("inversión no encontrada")

// InvestmentRepository maneja las operaciones sobre las inversiones del
// usuario. Todas las consultas filtran por user_id.
type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{
		db: db,
	}
}

// CreateInvestment guarda una inversión ya validada
func (r *InvestmentRepository) CreateInvestment(inv *models.Investment) error {
	query := `
		INSERT INTO investments (id, user_id, asset_type, ticker, quantity, buy_price, buy_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		query,
		inv.ID,
		inv.UserID,
		inv.AssetType,
		inv.Ticker,
		inv.Quantity,
		inv.BuyPrice,
		inv.BuyDate,
		inv.Note,
	)
	return err
}

// GetUserInvestments obtiene todas las inversiones del usuario
func (r *InvestmentRepository) GetUserInvestments(userID string) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, asset_type, ticker, quantity, buy_price, buy_date, COALESCE(note, ''), created_at
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		err := rows.Scan(
			&inv.ID,
			&inv.UserID,
			&inv.AssetType,
			&inv.Ticker,
			&inv.Quantity,
			&inv.BuyPrice,
			&inv.BuyDate,
			&inv.Note,
			&inv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}

	return investments, rows.Err()
}

// GetInvestment obtiene una inversión del usuario por su id
func (r *InvestmentRepository) GetInvestment(userID, id string) (*models.Investment, error) {
	inv := &models.Investment{}
	query := `
		SELECT id, user_id, asset_type, ticker, quantity, buy_price, buy_date, COALESCE(note, ''), created_at
		FROM investments
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(query, id, userID).Scan(
		&inv.ID,
		&inv.UserID,
		&inv.AssetType,
		&inv.Ticker,
		&inv.Quantity,
		&inv.BuyPrice,
		&inv.BuyDate,
		&inv.Note,
		&inv.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvestmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// UpdateInvestment actualiza la cantidad y/o el precio de compra de una
// inversión del usuario. Los campos en nil no se modifican.
func (r *InvestmentRepository) UpdateInvestment(userID, id string, quantity, buyPrice *float64) (*models.Investment, error) {
	query := `
		UPDATE investments
		SET quantity = COALESCE($1, quantity), buy_price = COALESCE($2, buy_price)
		WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, quantity, buyPrice, id, userID)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvestmentNotFound
	}

	return r.GetInvestment(userID, id)
}

// DeleteInvestment elimina una inversión del usuario
func (r *InvestmentRepository) DeleteInvestment(userID, id string) error {
	query := `DELETE FROM investments WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvestmentNotFound
	}

	return nil
}

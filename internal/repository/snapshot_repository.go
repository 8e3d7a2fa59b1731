package repository

import (
	"database/sql"
	"log"
	"time"

	"github.com/FpProDev/FP_Api.git/internal/models"
	"github.com/google/uuid"
)

// SnapshotRepository guarda el historial de resúmenes del portafolio
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// SaveDailySnapshot guarda el resumen del portafolio para el día actual.
// Si ya existe un snapshot para hoy solo se actualiza cuando el valor
// actual supera al registrado, así el historial conserva el máximo diario.
func (r *SnapshotRepository) SaveDailySnapshot(userID string, summary models.PortfolioSummary) error {
	// No guardamos snapshots de portafolios vacíos
	if summary.TotalInvested <= 0 {
		return nil
	}

	now := time.Now()

	var existingID string
	var existingValue float64
	query := `
		SELECT id, current_value FROM portfolio_snapshots
		WHERE user_id = $1 AND date::date = $2::date
		ORDER BY current_value DESC LIMIT 1`

	err := r.db.QueryRow(query, userID, now).Scan(&existingID, &existingValue)
	if err == nil {
		if existingValue >= summary.CurrentValue {
			return nil
		}

		updateQuery := `
			UPDATE portfolio_snapshots
			SET total_invested = $1, current_value = $2, gain_loss = $3, gain_loss_pct = $4, date = $5
			WHERE id = $6`

		_, err := r.db.Exec(
			updateQuery,
			summary.TotalInvested,
			summary.CurrentValue,
			summary.GainLoss,
			summary.GainLossPct,
			now,
			existingID,
		)
		if err != nil {
			log.Printf("Error al actualizar el snapshot de %s: %v", userID, err)
		}
		return err
	}

	if err != sql.ErrNoRows {
		return err
	}

	insertQuery := `
		INSERT INTO portfolio_snapshots (id, user_id, date, total_invested, current_value, gain_loss, gain_loss_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.Exec(
		insertQuery,
		uuid.NewString(),
		userID,
		now,
		summary.TotalInvested,
		summary.CurrentValue,
		summary.GainLoss,
		summary.GainLossPct,
	)
	if err != nil {
		log.Printf("Error al guardar el snapshot de %s: %v", userID, err)
	}
	return err
}

// GetUserSnapshots devuelve el historial de snapshots del usuario, del más
// reciente al más antiguo
func (r *SnapshotRepository) GetUserSnapshots(userID string, limit int) ([]models.PortfolioSnapshot, error) {
	query := `
		SELECT id, user_id, date, total_invested, current_value, gain_loss, gain_loss_pct, created_at
		FROM portfolio_snapshots
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.PortfolioSnapshot{}
	for rows.Next() {
		var s models.PortfolioSnapshot
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Date,
			&s.TotalInvested,
			&s.CurrentValue,
			&s.GainLoss,
			&s.GainLossPct,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

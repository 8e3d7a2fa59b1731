package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			envOrDefault("DB_HOST", "localhost"),
			envOrDefault("DB_PORT", "5432"),
			envOrDefault("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOrDefault("DB_NAME", "fp_pro"),
		)
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	if err := DB.Ping(); err != nil {
		return err
	}

	// Crear tabla de usuarios si no existe
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);`

	if _, err := DB.Exec(createUsersTableSQL); err != nil {
		return err
	}

	// Crear tabla de inversiones
	createInvestmentsTableSQL := `
	CREATE TABLE IF NOT EXISTS investments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		asset_type TEXT NOT NULL,
		ticker TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		buy_price DOUBLE PRECISION NOT NULL,
		buy_date DATE NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := DB.Exec(createInvestmentsTableSQL); err != nil {
		return err
	}

	// Crear índice para búsqueda rápida por usuario
	createInvestmentsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_investments_user
	ON investments(user_id);`

	if _, err := DB.Exec(createInvestmentsIndexSQL); err != nil {
		return err
	}

	// Crear tabla para el historial de resúmenes del portafolio
	createSnapshotsTableSQL := `
	CREATE TABLE IF NOT EXISTS portfolio_snapshots (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		total_invested DOUBLE PRECISION NOT NULL,
		current_value DOUBLE PRECISION NOT NULL,
		gain_loss DOUBLE PRECISION NOT NULL,
		gain_loss_pct DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := DB.Exec(createSnapshotsTableSQL); err != nil {
		return err
	}

	// Crear índice para búsqueda rápida por usuario y fecha
	createSnapshotsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_portfolio_snapshots_user_date
	ON portfolio_snapshots(user_id, date);`

	if _, err := DB.Exec(createSnapshotsIndexSQL); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

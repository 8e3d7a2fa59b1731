package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir el campo note a la tabla investments
	addNoteColumnSQL := `
	ALTER TABLE investments ADD COLUMN IF NOT EXISTS note TEXT;
	`

	if _, err := DB.Exec(addNoteColumnSQL); err != nil {
		log.Printf("Error al añadir la columna note: %v", err)
		return err
	}

	return nil
}

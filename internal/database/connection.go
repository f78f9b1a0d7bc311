package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var db *sql.DB

func InitializeWithURL(url string, maxOpen, maxIdle int, connLifetime time.Duration) error {
	return initializeDB(url, maxOpen, maxIdle, connLifetime)
}

func initializeDB(connStr string, maxOpen, maxIdle int, connLifetime time.Duration) error {
	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(connLifetime)

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = ensureSchema(); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Println("✓ Connected to PostgreSQL")
	return nil
}

func ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS input_records (
			record_key TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS plan_runs (
			id             TEXT PRIMARY KEY,
			week_start     TIMESTAMPTZ NOT NULL,
			posts_count    INTEGER NOT NULL,
			comments_count INTEGER NOT NULL,
			score          NUMERIC(4,1) NOT NULL,
			details        JSONB,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func GetDB() *sql.DB {
	return db
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

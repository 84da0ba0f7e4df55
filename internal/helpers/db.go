package helpers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func OpenDB(cfg DBConfig, logger *slog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	var db *sql.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		logger.Info("waiting for database", "attempt", i+1, "of", 5)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("could not reach database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	logger.Info("database connection established")

	if err := RunMigrations(db, logger); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates tables and indexes idempotently.
func RunMigrations(db *sql.DB, logger *slog.Logger) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID          PRIMARY KEY,
			name          VARCHAR(50)   NOT NULL,
			email         VARCHAR(255)  NOT NULL UNIQUE,
			password_hash VARCHAR(255)  NOT NULL,
			is_admin      BOOLEAN       NOT NULL DEFAULT FALSE,
			phone         VARCHAR(20)   NOT NULL DEFAULT '',
			address       TEXT          NOT NULL DEFAULT '',
			balance       NUMERIC(20,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
			created_at    TIMESTAMP     NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMP     NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id           UUID        PRIMARY KEY,
			name         VARCHAR(50) NOT NULL,
			is_gold      BOOLEAN     NOT NULL DEFAULT FALSE,
			phone_number VARCHAR(15) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id   UUID        PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id          UUID          PRIMARY KEY,
			name        VARCHAR(255)  NOT NULL,
			category_id UUID          NOT NULL REFERENCES categories(id),
			stock       INTEGER       NOT NULL CHECK (stock >= 0),
			description TEXT          NOT NULL,
			image       TEXT          NOT NULL,
			price       NUMERIC(20,2) NOT NULL CHECK (price >= 0),
			ratings     NUMERIC(2,1)  NOT NULL DEFAULT 0 CHECK (ratings BETWEEN 0 AND 5)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id           UUID          PRIMARY KEY,
			user_id      UUID          NOT NULL REFERENCES users(id),
			address      TEXT          NOT NULL DEFAULT '',
			city         TEXT          NOT NULL DEFAULT '',
			items        JSONB         NOT NULL DEFAULT '[]',
			total_amount NUMERIC(20,2) NOT NULL,
			status       VARCHAR(20)   NOT NULL DEFAULT 'Pending',
			created_at   TIMESTAMP     NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMP     NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS redeems (
			id   UUID         PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS redemptions (
			id         UUID          PRIMARY KEY,
			redeem_id  UUID          NOT NULL REFERENCES redeems(id),
			user_id    UUID          NOT NULL REFERENCES users(id),
			amount     NUMERIC(20,2) NOT NULL CHECK (amount > 0),
			image      TEXT,
			status     VARCHAR(10)   NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'approved', 'rejected')),
			reason     TEXT,
			created_at TIMESTAMP     NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category_id
			ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_id
			ON orders(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_redeem_id
			ON redemptions(redeem_id)`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_user_id
			ON redemptions(user_id)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	logger.Info("migrations completed")
	return nil
}

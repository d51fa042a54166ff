package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(pool); err != nil {
		pool.Close()
		return nil, err
	}

	logrus.Println("connected to PostgreSQL")
	return pool, nil
}

// initSchema creates or updates the tables the admin backend uses.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'admin',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// DOCUMENTS
	// -------------------------------
	documentsTableSQL := `
		CREATE TABLE IF NOT EXISTS documents (
			collection VARCHAR(255) NOT NULL,
			id VARCHAR(255) NOT NULL,
			fields JSONB NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (collection, id)
		)
	`
	if _, err := pool.Exec(ctx, documentsTableSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS documents_collection_idx
		ON documents (collection)
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	return nil
}

package db

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

func MustOpen(dsn string, logger *log.Logger) *sql.DB {
	if dsn == "" {
		logger.Fatal("POS_DB_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}

	if err := db.Ping(); err != nil {
		logger.Fatalf("ping db: %v", err)
	}

	return db
}

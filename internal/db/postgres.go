package db

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the process-wide Postgres pool, nil when DATABASE_URL is unset.
// The tracker treats Postgres as a stale backup of the price feed, so
// running without it only disables the fallback, not the dashboard.
var Pool *pgxpool.Pool

var openPool = pgxpool.New

// InitPostgres connects the global pool using DATABASE_URL.
func InitPostgres(ctx context.Context) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, running without Postgres")
		return
	}

	pool, err := openPool(ctx, dsn)
	if err != nil {
		log.Printf("failed to connect to Postgres, running without it: %v", err)
		return
	}
	if err := pool.Ping(ctx); err != nil {
		log.Printf("Postgres unreachable, running without it: %v", err)
		pool.Close()
		return
	}

	Pool = pool
	log.Println("Connected to Postgres")
}

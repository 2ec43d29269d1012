// Command migrate applies or inspects the embedded database migrations.
//
// Usage: migrate up | down | status
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/app"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|status")
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		logger.Error("init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close() //nolint:errcheck

	switch command {
	case "up":
		err = m.Up(ctx, logger)
	case "down":
		err = m.Down(ctx, logger)
	case "status":
		err = m.Status(ctx, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migrate "+command+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

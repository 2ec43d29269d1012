package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/assignment"
	foodrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/food"
	moodrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/mood"
	userrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
	"github.com/heartmarshall/yuhuh-backend/internal/service/activity"
	"github.com/heartmarshall/yuhuh-backend/internal/service/food"
	"github.com/heartmarshall/yuhuh-backend/internal/service/mood"
	"github.com/heartmarshall/yuhuh-backend/internal/service/user"
	"github.com/heartmarshall/yuhuh-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool, txm)
	assignments := assignment.New(pool)

	foodSvc := food.NewService(logger, foodrepo.New(pool, txm), users, cfg.Ledger)
	moodSvc := mood.NewService(logger, moodrepo.New(pool, txm), assignments, users, cfg.Ledger)
	activitySvc := activity.NewService(logger, activityrepo.New(pool, txm), users, cfg.Ledger)
	userSvc := user.NewService(logger, users)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion(), logger),
		Food:     rest.NewFoodHandler(foodSvc, logger),
		Mood:     rest.NewMoodHandler(moodSvc, logger),
		Activity: rest.NewActivityHandler(activitySvc, logger),
		User:     rest.NewUserHandler(userSvc, logger),
	}, cfg.CORS, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

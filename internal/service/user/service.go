// Package user implements registration and lookup of the people who own
// ledger records.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error)
	CreateDiscordUser(ctx context.Context, u domain.User, discord domain.DiscordUser) error
}

// Service implements user registration and lookup.
type Service struct {
	log      *slog.Logger
	users    userRepo
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		validate: validator.New(),
		now:      time.Now,
	}
}

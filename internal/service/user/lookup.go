package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByDiscordID returns the user linked to a Discord account.
func (s *Service) FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error) {
	if discordID <= 0 {
		return nil, domain.NewValidationError("discord_id", "must be positive")
	}
	u, err := s.users.FindByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("find user by discord id: %w", err)
	}
	return u, nil
}

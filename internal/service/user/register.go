package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// CreateDiscordUser registers a new user linked to a Discord account and
// returns its id. Returns domain.ErrAlreadyExists if the account is
// already linked.
func (s *Service) CreateDiscordUser(ctx context.Context, input CreateDiscordUserInput) (uuid.UUID, error) {
	if err := input.Validate(s.validate); err != nil {
		return uuid.Nil, err
	}

	existing, err := s.users.FindByDiscordID(ctx, input.DiscordID)
	switch {
	case err == nil:
		s.log.WarnContext(ctx, "existing user found",
			slog.Int64("discord_id", input.DiscordID),
			slog.String("user_id", existing.ID.String()),
		)
		return uuid.Nil, fmt.Errorf("user with discord id %d: %w", input.DiscordID, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return uuid.Nil, fmt.Errorf("find user by discord id: %w", err)
	}

	now := s.now().UTC()
	u := domain.User{
		ID:              uuid.New(),
		Personalisation: domain.TrimOptionalText(input.Personalisation),
		ContactName:     domain.CleanOptionalText(input.ContactName),
		ContactEmail:    domain.CleanOptionalText(input.ContactEmail),
		Timezone:        input.Timezone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	discord := domain.DiscordUser{
		DiscordID: input.DiscordID,
		Username:  domain.CleanText(input.DiscordUsername),
		UserID:    u.ID,
	}

	// A concurrent registration of the same account surfaces here as
	// ErrAlreadyExists from the unique constraint.
	if err := s.users.CreateDiscordUser(ctx, u, discord); err != nil {
		return uuid.Nil, fmt.Errorf("create discord user: %w", err)
	}

	s.log.InfoContext(ctx, "discord user created",
		slog.String("user_id", u.ID.String()),
		slog.Int64("discord_id", input.DiscordID),
	)

	return u.ID, nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo

func newTestService(repo *userRepoMock) *Service {
	svc := NewService(slog.Default(), repo)
	svc.now = func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC) }
	return svc
}

func notFound(ctx context.Context, discordID int64) (*domain.User, error) {
	return nil, fmt.Errorf("discord_user %d: %w", discordID, domain.ErrNotFound)
}

func TestCreateDiscordUser_Success(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		FindByDiscordIDFunc:   notFound,
		CreateDiscordUserFunc: func(ctx context.Context, u domain.User, d domain.DiscordUser) error { return nil },
	}
	svc := newTestService(repo)

	id, err := svc.CreateDiscordUser(context.Background(), CreateDiscordUserInput{
		DiscordID:       42,
		DiscordUsername: " yuhuh ",
		ContactName:     ptr("  "),
		ContactEmail:    ptr("me@example.com"),
		Timezone:        ptr("Australia/Melbourne"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	calls := repo.CreateDiscordUserCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, id, calls[0].U.ID)
	assert.Equal(t, id, calls[0].Discord.UserID)
	assert.Equal(t, int64(42), calls[0].Discord.DiscordID)
	assert.Equal(t, "yuhuh", calls[0].Discord.Username)
	assert.Nil(t, calls[0].U.ContactName)
	assert.Equal(t, "me@example.com", *calls[0].U.ContactEmail)
	assert.Equal(t, calls[0].U.CreatedAt, calls[0].U.UpdatedAt)
}

func TestCreateDiscordUser_AlreadyLinked(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		FindByDiscordIDFunc: func(ctx context.Context, discordID int64) (*domain.User, error) {
			return &domain.User{ID: uuid.New()}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.CreateDiscordUser(context.Background(), CreateDiscordUserInput{DiscordID: 42, DiscordUsername: "x"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Empty(t, repo.CreateDiscordUserCalls())
}

func TestCreateDiscordUser_LookupFails(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		FindByDiscordIDFunc: func(ctx context.Context, discordID int64) (*domain.User, error) {
			return nil, domain.NewDatabaseError("select user", errors.New("boom"))
		},
	}
	svc := newTestService(repo)

	_, err := svc.CreateDiscordUser(context.Background(), CreateDiscordUserInput{DiscordID: 42, DiscordUsername: "x"})
	assert.ErrorIs(t, err, domain.ErrDatabase)
	assert.Empty(t, repo.CreateDiscordUserCalls())
}

func TestCreateDiscordUser_RaceSurfacesAsConflict(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		FindByDiscordIDFunc: notFound,
		CreateDiscordUserFunc: func(ctx context.Context, u domain.User, d domain.DiscordUser) error {
			return fmt.Errorf("discord_user %d: %w", d.DiscordID, domain.ErrAlreadyExists)
		},
	}
	svc := newTestService(repo)

	_, err := svc.CreateDiscordUser(context.Background(), CreateDiscordUserInput{DiscordID: 7, DiscordUsername: "x"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateDiscordUser_InvalidInput_NoIO(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{}
	svc := newTestService(repo)

	_, err := svc.CreateDiscordUser(context.Background(), CreateDiscordUserInput{DiscordID: 1, DiscordUsername: "x", ContactEmail: ptr("nope")})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.FindByDiscordIDCalls())
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, uid uuid.UUID) (*domain.User, error) {
			if uid == id {
				return &domain.User{ID: id}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo)

	u, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetUser(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFindByDiscordID(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{FindByDiscordIDFunc: notFound}
	svc := newTestService(repo)

	_, err := svc.FindByDiscordID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.FindByDiscordID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, repo.FindByDiscordIDCalls(), 1)
}

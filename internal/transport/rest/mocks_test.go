package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/heartmarshall/yuhuh-backend/internal/service/activity"
	"github.com/heartmarshall/yuhuh-backend/internal/service/food"
	"github.com/heartmarshall/yuhuh-backend/internal/service/mood"
	"github.com/heartmarshall/yuhuh-backend/internal/service/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type foodServiceMock struct {
	createFn func(ctx context.Context, input food.CreateEntriesInput) error
	readFn   func(ctx context.Context, input food.ReadEntriesInput) (*food.ReadEntriesResult, error)
}

func (m *foodServiceMock) CreateEntries(ctx context.Context, input food.CreateEntriesInput) error {
	return m.createFn(ctx, input)
}

func (m *foodServiceMock) ReadEntries(ctx context.Context, input food.ReadEntriesInput) (*food.ReadEntriesResult, error) {
	return m.readFn(ctx, input)
}

type moodServiceMock struct {
	createFn            func(ctx context.Context, input mood.CreateEntriesInput) error
	readFn              func(ctx context.Context, input mood.ReadEntriesInput) (*mood.ReadEntriesResult, error)
	createAssignmentsFn func(ctx context.Context, input mood.CreateAssignmentsInput) error
	listAssignmentsFn   func(ctx context.Context, userID uuid.UUID) (*mood.AssignmentsResult, error)
}

func (m *moodServiceMock) CreateEntries(ctx context.Context, input mood.CreateEntriesInput) error {
	return m.createFn(ctx, input)
}

func (m *moodServiceMock) ReadEntries(ctx context.Context, input mood.ReadEntriesInput) (*mood.ReadEntriesResult, error) {
	return m.readFn(ctx, input)
}

func (m *moodServiceMock) CreateAssignments(ctx context.Context, input mood.CreateAssignmentsInput) error {
	return m.createAssignmentsFn(ctx, input)
}

func (m *moodServiceMock) ListAssignments(ctx context.Context, userID uuid.UUID) (*mood.AssignmentsResult, error) {
	return m.listAssignmentsFn(ctx, userID)
}

type activityServiceMock struct {
	createFn func(ctx context.Context, input activity.CreateEntriesInput) error
	readFn   func(ctx context.Context, input activity.ReadEntriesInput) ([]activity.FoundEntry, error)
}

func (m *activityServiceMock) CreateEntries(ctx context.Context, input activity.CreateEntriesInput) error {
	return m.createFn(ctx, input)
}

func (m *activityServiceMock) ReadEntries(ctx context.Context, input activity.ReadEntriesInput) ([]activity.FoundEntry, error) {
	return m.readFn(ctx, input)
}

type userServiceMock struct {
	createFn    func(ctx context.Context, input user.CreateDiscordUserInput) (uuid.UUID, error)
	getFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	findDiscord func(ctx context.Context, discordID int64) (*domain.User, error)
}

func (m *userServiceMock) CreateDiscordUser(ctx context.Context, input user.CreateDiscordUserInput) (uuid.UUID, error) {
	return m.createFn(ctx, input)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getFn(ctx, id)
}

func (m *userServiceMock) FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error) {
	return m.findDiscord(ctx, discordID)
}

package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByDiscordIDFunc   func(ctx context.Context, discordID int64) (*domain.User, error)
	CreateDiscordUserFunc func(ctx context.Context, u domain.User, discord domain.DiscordUser) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindByDiscordID []struct {
			Ctx       context.Context
			DiscordID int64
		}
		CreateDiscordUser []struct {
			Ctx     context.Context
			U       domain.User
			Discord domain.DiscordUser
		}
	}
	lockGetByID           sync.RWMutex
	lockFindByDiscordID   sync.RWMutex
	lockCreateDiscordUser sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error) {
	if mock.FindByDiscordIDFunc == nil {
		panic("userRepoMock.FindByDiscordIDFunc: method is nil but userRepo.FindByDiscordID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DiscordID int64
	}{Ctx: ctx, DiscordID: discordID}
	mock.lockFindByDiscordID.Lock()
	mock.calls.FindByDiscordID = append(mock.calls.FindByDiscordID, callInfo)
	mock.lockFindByDiscordID.Unlock()
	return mock.FindByDiscordIDFunc(ctx, discordID)
}

func (mock *userRepoMock) FindByDiscordIDCalls() []struct {
	Ctx       context.Context
	DiscordID int64
} {
	mock.lockFindByDiscordID.RLock()
	calls := mock.calls.FindByDiscordID
	mock.lockFindByDiscordID.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateDiscordUser(ctx context.Context, u domain.User, discord domain.DiscordUser) error {
	if mock.CreateDiscordUserFunc == nil {
		panic("userRepoMock.CreateDiscordUserFunc: method is nil but userRepo.CreateDiscordUser was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		U       domain.User
		Discord domain.DiscordUser
	}{Ctx: ctx, U: u, Discord: discord}
	mock.lockCreateDiscordUser.Lock()
	mock.calls.CreateDiscordUser = append(mock.calls.CreateDiscordUser, callInfo)
	mock.lockCreateDiscordUser.Unlock()
	return mock.CreateDiscordUserFunc(ctx, u, discord)
}

func (mock *userRepoMock) CreateDiscordUserCalls() []struct {
	Ctx     context.Context
	U       domain.User
	Discord domain.DiscordUser
} {
	mock.lockCreateDiscordUser.RLock()
	calls := mock.calls.CreateDiscordUser
	mock.lockCreateDiscordUser.RUnlock()
	return calls
}

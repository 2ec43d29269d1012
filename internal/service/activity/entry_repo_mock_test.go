package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateBatchFunc func(ctx context.Context, entries []domain.ActivityEntry) error
	ReadRangeFunc   func(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.ActivityEntry, error)

	calls struct {
		CreateBatch []struct {
			Ctx     context.Context
			Entries []domain.ActivityEntry
		}
		ReadRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.RangeFilter
		}
	}
	lockCreateBatch sync.RWMutex
	lockReadRange   sync.RWMutex
}

func (mock *entryRepoMock) CreateBatch(ctx context.Context, entries []domain.ActivityEntry) error {
	if mock.CreateBatchFunc == nil {
		panic("entryRepoMock.CreateBatchFunc: method is nil but entryRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.ActivityEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, entries)
}

func (mock *entryRepoMock) CreateBatchCalls() []struct {
	Ctx     context.Context
	Entries []domain.ActivityEntry
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *entryRepoMock) ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.ActivityEntry, error) {
	if mock.ReadRangeFunc == nil {
		panic("entryRepoMock.ReadRangeFunc: method is nil but entryRepo.ReadRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.RangeFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockReadRange.Lock()
	mock.calls.ReadRange = append(mock.calls.ReadRange, callInfo)
	mock.lockReadRange.Unlock()
	return mock.ReadRangeFunc(ctx, userID, f)
}

func (mock *entryRepoMock) ReadRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.RangeFilter
} {
	mock.lockReadRange.RLock()
	calls := mock.calls.ReadRange
	mock.lockReadRange.RUnlock()
	return calls
}

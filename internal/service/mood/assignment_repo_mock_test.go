package mood

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	FindByIndexFunc func(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID, index domain.Rating) (*domain.Assignment, error)
	UpsertFunc      func(ctx context.Context, a domain.Assignment) error
	ListByUserFunc  func(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID) ([]domain.Assignment, error)

	calls struct {
		FindByIndex []struct {
			Ctx    context.Context
			Kind   domain.AssignmentKind
			UserID uuid.UUID
			Index  domain.Rating
		}
		Upsert []struct {
			Ctx context.Context
			A   domain.Assignment
		}
		ListByUser []struct {
			Ctx    context.Context
			Kind   domain.AssignmentKind
			UserID uuid.UUID
		}
	}
	lockFindByIndex sync.RWMutex
	lockUpsert      sync.RWMutex
	lockListByUser  sync.RWMutex
}

func (mock *assignmentRepoMock) FindByIndex(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID, index domain.Rating) (*domain.Assignment, error) {
	if mock.FindByIndexFunc == nil {
		panic("assignmentRepoMock.FindByIndexFunc: method is nil but assignmentRepo.FindByIndex was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Kind   domain.AssignmentKind
		UserID uuid.UUID
		Index  domain.Rating
	}{Ctx: ctx, Kind: kind, UserID: userID, Index: index}
	mock.lockFindByIndex.Lock()
	mock.calls.FindByIndex = append(mock.calls.FindByIndex, callInfo)
	mock.lockFindByIndex.Unlock()
	return mock.FindByIndexFunc(ctx, kind, userID, index)
}

func (mock *assignmentRepoMock) FindByIndexCalls() []struct {
	Ctx    context.Context
	Kind   domain.AssignmentKind
	UserID uuid.UUID
	Index  domain.Rating
} {
	mock.lockFindByIndex.RLock()
	calls := mock.calls.FindByIndex
	mock.lockFindByIndex.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) Upsert(ctx context.Context, a domain.Assignment) error {
	if mock.UpsertFunc == nil {
		panic("assignmentRepoMock.UpsertFunc: method is nil but assignmentRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Assignment
	}{Ctx: ctx, A: a}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, a)
}

func (mock *assignmentRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	A   domain.Assignment
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) ListByUser(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID) ([]domain.Assignment, error) {
	if mock.ListByUserFunc == nil {
		panic("assignmentRepoMock.ListByUserFunc: method is nil but assignmentRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Kind   domain.AssignmentKind
		UserID uuid.UUID
	}{Ctx: ctx, Kind: kind, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, kind, userID)
}

func (mock *assignmentRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	Kind   domain.AssignmentKind
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

package food

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ userChecker = &userCheckerMock{}

type userCheckerMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *userCheckerMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userCheckerMock.ExistsFunc: method is nil but userChecker.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *userCheckerMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

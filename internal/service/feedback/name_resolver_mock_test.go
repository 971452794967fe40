package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ nameResolver = &nameResolverMock{}

type nameResolverMock struct {
	NamesFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	calls struct {
		Names []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockNames sync.RWMutex
}

func (mock *nameResolverMock) Names(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if mock.NamesFunc == nil {
		panic("nameResolverMock.NamesFunc: method is nil but nameResolver.Names was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockNames.Lock()
	mock.calls.Names = append(mock.calls.Names, callInfo)
	mock.lockNames.Unlock()
	return mock.NamesFunc(ctx, ids)
}

func (mock *nameResolverMock) NamesCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockNames.RLock()
	calls = mock.calls.Names
	mock.lockNames.RUnlock()
	return calls
}

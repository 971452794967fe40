package emergency

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc          func(ctx context.Context, l *domain.EmergencyLog) (*domain.EmergencyLog, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	ListSinceFunc       func(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]domain.EmergencyLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.EmergencyLog
		}
		DeleteOlderThan []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		ListSince []struct {
			Ctx     context.Context
			UserIDs []uuid.UUID
			Since   time.Time
			Limit   int
		}
	}
	lockCreate          sync.RWMutex
	lockDeleteOlderThan sync.RWMutex
	lockListSince       sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.EmergencyLog) (*domain.EmergencyLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.EmergencyLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.EmergencyLog
} {
	var calls []struct {
		Ctx context.Context
		L   *domain.EmergencyLog
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.DeleteOlderThanFunc == nil {
		panic("logRepoMock.DeleteOlderThanFunc: method is nil but logRepo.DeleteOlderThan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
	}
	mock.lockDeleteOlderThan.Lock()
	mock.calls.DeleteOlderThan = append(mock.calls.DeleteOlderThan, callInfo)
	mock.lockDeleteOlderThan.Unlock()
	return mock.DeleteOlderThanFunc(ctx, cutoff)
}

func (mock *logRepoMock) DeleteOlderThanCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockDeleteOlderThan.RLock()
	calls = mock.calls.DeleteOlderThan
	mock.lockDeleteOlderThan.RUnlock()
	return calls
}

func (mock *logRepoMock) ListSince(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]domain.EmergencyLog, error) {
	if mock.ListSinceFunc == nil {
		panic("logRepoMock.ListSinceFunc: method is nil but logRepo.ListSince was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
		Since   time.Time
		Limit   int
	}{
		Ctx:     ctx,
		UserIDs: userIDs,
		Since:   since,
		Limit:   limit,
	}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, userIDs, since, limit)
}

func (mock *logRepoMock) ListSinceCalls() []struct {
	Ctx     context.Context
	UserIDs []uuid.UUID
	Since   time.Time
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
		Since   time.Time
		Limit   int
	}
	mock.lockListSince.RLock()
	calls = mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}

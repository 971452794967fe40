package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ emergencyService = &emergencyServiceMock{}

type emergencyServiceMock struct {
	PurgeQuietlyFunc   func(ctx context.Context)
	ContactForFunc     func(ctx context.Context, userID uuid.UUID) (*domain.EmergencyContact, error)
	RecentForUsersFunc func(ctx context.Context, userIDs []uuid.UUID, limit int) ([]domain.EmergencyLog, error)

	calls struct {
		PurgeQuietly []struct {
			Ctx context.Context
		}
		ContactFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		RecentForUsers []struct {
			Ctx     context.Context
			UserIDs []uuid.UUID
			Limit   int
		}
	}
	lockPurgeQuietly   sync.RWMutex
	lockContactFor     sync.RWMutex
	lockRecentForUsers sync.RWMutex
}

func (mock *emergencyServiceMock) PurgeQuietly(ctx context.Context) {
	if mock.PurgeQuietlyFunc == nil {
		panic("emergencyServiceMock.PurgeQuietlyFunc: method is nil but emergencyService.PurgeQuietly was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockPurgeQuietly.Lock()
	mock.calls.PurgeQuietly = append(mock.calls.PurgeQuietly, callInfo)
	mock.lockPurgeQuietly.Unlock()
	mock.PurgeQuietlyFunc(ctx)
}

func (mock *emergencyServiceMock) PurgeQuietlyCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockPurgeQuietly.RLock()
	calls = mock.calls.PurgeQuietly
	mock.lockPurgeQuietly.RUnlock()
	return calls
}

func (mock *emergencyServiceMock) ContactFor(ctx context.Context, userID uuid.UUID) (*domain.EmergencyContact, error) {
	if mock.ContactForFunc == nil {
		panic("emergencyServiceMock.ContactForFunc: method is nil but emergencyService.ContactFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockContactFor.Lock()
	mock.calls.ContactFor = append(mock.calls.ContactFor, callInfo)
	mock.lockContactFor.Unlock()
	return mock.ContactForFunc(ctx, userID)
}

func (mock *emergencyServiceMock) ContactForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockContactFor.RLock()
	calls = mock.calls.ContactFor
	mock.lockContactFor.RUnlock()
	return calls
}

func (mock *emergencyServiceMock) RecentForUsers(ctx context.Context, userIDs []uuid.UUID, limit int) ([]domain.EmergencyLog, error) {
	if mock.RecentForUsersFunc == nil {
		panic("emergencyServiceMock.RecentForUsersFunc: method is nil but emergencyService.RecentForUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		UserIDs: userIDs,
		Limit:   limit,
	}
	mock.lockRecentForUsers.Lock()
	mock.calls.RecentForUsers = append(mock.calls.RecentForUsers, callInfo)
	mock.lockRecentForUsers.Unlock()
	return mock.RecentForUsersFunc(ctx, userIDs, limit)
}

func (mock *emergencyServiceMock) RecentForUsersCalls() []struct {
	Ctx     context.Context
	UserIDs []uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
		Limit   int
	}
	mock.lockRecentForUsers.RLock()
	calls = mock.calls.RecentForUsers
	mock.lockRecentForUsers.RUnlock()
	return calls
}

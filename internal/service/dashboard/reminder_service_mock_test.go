package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ reminderService = &reminderServiceMock{}

type reminderServiceMock struct {
	UpcomingFunc   func(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reminder, error)
	IncompleteFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Reminder, error)

	calls struct {
		Upcoming []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Days   int
		}
		Incomplete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockUpcoming   sync.RWMutex
	lockIncomplete sync.RWMutex
}

func (mock *reminderServiceMock) Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reminder, error) {
	if mock.UpcomingFunc == nil {
		panic("reminderServiceMock.UpcomingFunc: method is nil but reminderService.Upcoming was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Days   int
	}{
		Ctx:    ctx,
		UserID: userID,
		Days:   days,
	}
	mock.lockUpcoming.Lock()
	mock.calls.Upcoming = append(mock.calls.Upcoming, callInfo)
	mock.lockUpcoming.Unlock()
	return mock.UpcomingFunc(ctx, userID, days)
}

func (mock *reminderServiceMock) UpcomingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Days   int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Days   int
	}
	mock.lockUpcoming.RLock()
	calls = mock.calls.Upcoming
	mock.lockUpcoming.RUnlock()
	return calls
}

func (mock *reminderServiceMock) Incomplete(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Reminder, error) {
	if mock.IncompleteFunc == nil {
		panic("reminderServiceMock.IncompleteFunc: method is nil but reminderService.Incomplete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockIncomplete.Lock()
	mock.calls.Incomplete = append(mock.calls.Incomplete, callInfo)
	mock.lockIncomplete.Unlock()
	return mock.IncompleteFunc(ctx, userID, limit)
}

func (mock *reminderServiceMock) IncompleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockIncomplete.RLock()
	calls = mock.calls.Incomplete
	mock.lockIncomplete.RUnlock()
	return calls
}

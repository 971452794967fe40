package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
)

var _ medicineService = &medicineServiceMock{}

type medicineServiceMock struct {
	DueTodayForFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleEntry, error)
	TodayForFunc    func(ctx context.Context, userID uuid.UUID) (*medicine.TodayResult, error)

	calls struct {
		DueTodayFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		TodayFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockDueTodayFor sync.RWMutex
	lockTodayFor    sync.RWMutex
}

func (mock *medicineServiceMock) DueTodayFor(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleEntry, error) {
	if mock.DueTodayForFunc == nil {
		panic("medicineServiceMock.DueTodayForFunc: method is nil but medicineService.DueTodayFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDueTodayFor.Lock()
	mock.calls.DueTodayFor = append(mock.calls.DueTodayFor, callInfo)
	mock.lockDueTodayFor.Unlock()
	return mock.DueTodayForFunc(ctx, userID)
}

func (mock *medicineServiceMock) DueTodayForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockDueTodayFor.RLock()
	calls = mock.calls.DueTodayFor
	mock.lockDueTodayFor.RUnlock()
	return calls
}

func (mock *medicineServiceMock) TodayFor(ctx context.Context, userID uuid.UUID) (*medicine.TodayResult, error) {
	if mock.TodayForFunc == nil {
		panic("medicineServiceMock.TodayForFunc: method is nil but medicineService.TodayFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockTodayFor.Lock()
	mock.calls.TodayFor = append(mock.calls.TodayFor, callInfo)
	mock.lockTodayFor.Unlock()
	return mock.TodayForFunc(ctx, userID)
}

func (mock *medicineServiceMock) TodayForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockTodayFor.RLock()
	calls = mock.calls.TodayFor
	mock.lockTodayFor.RUnlock()
	return calls
}

package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/finance"
)

var _ financeService = &financeServiceMock{}

type financeServiceMock struct {
	UpcomingBillsFunc    func(ctx context.Context, userID uuid.UUID, days int) ([]domain.FixedExpense, error)
	CaregiverSummaryFunc func(ctx context.Context, elderID uuid.UUID) (*finance.CaregiverSummary, error)

	calls struct {
		UpcomingBills []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Days   int
		}
		CaregiverSummary []struct {
			Ctx     context.Context
			ElderID uuid.UUID
		}
	}
	lockUpcomingBills    sync.RWMutex
	lockCaregiverSummary sync.RWMutex
}

func (mock *financeServiceMock) UpcomingBills(ctx context.Context, userID uuid.UUID, days int) ([]domain.FixedExpense, error) {
	if mock.UpcomingBillsFunc == nil {
		panic("financeServiceMock.UpcomingBillsFunc: method is nil but financeService.UpcomingBills was just called")
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
	mock.lockUpcomingBills.Lock()
	mock.calls.UpcomingBills = append(mock.calls.UpcomingBills, callInfo)
	mock.lockUpcomingBills.Unlock()
	return mock.UpcomingBillsFunc(ctx, userID, days)
}

func (mock *financeServiceMock) UpcomingBillsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Days   int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Days   int
	}
	mock.lockUpcomingBills.RLock()
	calls = mock.calls.UpcomingBills
	mock.lockUpcomingBills.RUnlock()
	return calls
}

func (mock *financeServiceMock) CaregiverSummary(ctx context.Context, elderID uuid.UUID) (*finance.CaregiverSummary, error) {
	if mock.CaregiverSummaryFunc == nil {
		panic("financeServiceMock.CaregiverSummaryFunc: method is nil but financeService.CaregiverSummary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ElderID uuid.UUID
	}{
		Ctx:     ctx,
		ElderID: elderID,
	}
	mock.lockCaregiverSummary.Lock()
	mock.calls.CaregiverSummary = append(mock.calls.CaregiverSummary, callInfo)
	mock.lockCaregiverSummary.Unlock()
	return mock.CaregiverSummaryFunc(ctx, elderID)
}

func (mock *financeServiceMock) CaregiverSummaryCalls() []struct {
	Ctx     context.Context
	ElderID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		ElderID uuid.UUID
	}
	mock.lockCaregiverSummary.RLock()
	calls = mock.calls.CaregiverSummary
	mock.lockCaregiverSummary.RUnlock()
	return calls
}

package finance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ expenseRepo = &expenseRepoMock{}

type expenseRepoMock struct {
	CreateRegularFunc     func(ctx context.Context, e *domain.RegularExpense) (*domain.RegularExpense, error)
	ListRegularFunc       func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.RegularExpense, error)
	ListRecentRegularFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RegularExpense, error)
	SumRegularFunc        func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (float64, error)
	DeleteRegularFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	CreateFixedFunc       func(ctx context.Context, e *domain.FixedExpense) (*domain.FixedExpense, error)
	ListFixedFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.FixedExpense, error)
	ListUnpaidDueFunc     func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.FixedExpense, error)
	ListRecentFixedFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.FixedExpense, error)
	SetPaidFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID, paid bool, paidAt *time.Time) (*domain.FixedExpense, error)
	DeleteFixedFunc       func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		CreateRegular []struct {
			Ctx context.Context
			E   *domain.RegularExpense
		}
		ListRegular []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		ListRecentRegular []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		SumRegular []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		DeleteRegular []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		CreateFixed []struct {
			Ctx context.Context
			E   *domain.FixedExpense
		}
		ListFixed []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListUnpaidDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		ListRecentFixed []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		SetPaid []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Paid   bool
			PaidAt *time.Time
		}
		DeleteFixed []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreateRegular     sync.RWMutex
	lockListRegular       sync.RWMutex
	lockListRecentRegular sync.RWMutex
	lockSumRegular        sync.RWMutex
	lockDeleteRegular     sync.RWMutex
	lockCreateFixed       sync.RWMutex
	lockListFixed         sync.RWMutex
	lockListUnpaidDue     sync.RWMutex
	lockListRecentFixed   sync.RWMutex
	lockSetPaid           sync.RWMutex
	lockDeleteFixed       sync.RWMutex
}

func (mock *expenseRepoMock) CreateRegular(ctx context.Context, e *domain.RegularExpense) (*domain.RegularExpense, error) {
	if mock.CreateRegularFunc == nil {
		panic("expenseRepoMock.CreateRegularFunc: method is nil but expenseRepo.CreateRegular was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.RegularExpense
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreateRegular.Lock()
	mock.calls.CreateRegular = append(mock.calls.CreateRegular, callInfo)
	mock.lockCreateRegular.Unlock()
	return mock.CreateRegularFunc(ctx, e)
}

func (mock *expenseRepoMock) CreateRegularCalls() []struct {
	Ctx context.Context
	E   *domain.RegularExpense
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.RegularExpense
	}
	mock.lockCreateRegular.RLock()
	calls = mock.calls.CreateRegular
	mock.lockCreateRegular.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListRegular(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.RegularExpense, error) {
	if mock.ListRegularFunc == nil {
		panic("expenseRepoMock.ListRegularFunc: method is nil but expenseRepo.ListRegular was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockListRegular.Lock()
	mock.calls.ListRegular = append(mock.calls.ListRegular, callInfo)
	mock.lockListRegular.Unlock()
	return mock.ListRegularFunc(ctx, userID, from, to)
}

func (mock *expenseRepoMock) ListRegularCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}
	mock.lockListRegular.RLock()
	calls = mock.calls.ListRegular
	mock.lockListRegular.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListRecentRegular(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RegularExpense, error) {
	if mock.ListRecentRegularFunc == nil {
		panic("expenseRepoMock.ListRecentRegularFunc: method is nil but expenseRepo.ListRecentRegular was just called")
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
	mock.lockListRecentRegular.Lock()
	mock.calls.ListRecentRegular = append(mock.calls.ListRecentRegular, callInfo)
	mock.lockListRecentRegular.Unlock()
	return mock.ListRecentRegularFunc(ctx, userID, limit)
}

func (mock *expenseRepoMock) ListRecentRegularCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListRecentRegular.RLock()
	calls = mock.calls.ListRecentRegular
	mock.lockListRecentRegular.RUnlock()
	return calls
}

func (mock *expenseRepoMock) SumRegular(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (float64, error) {
	if mock.SumRegularFunc == nil {
		panic("expenseRepoMock.SumRegularFunc: method is nil but expenseRepo.SumRegular was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockSumRegular.Lock()
	mock.calls.SumRegular = append(mock.calls.SumRegular, callInfo)
	mock.lockSumRegular.Unlock()
	return mock.SumRegularFunc(ctx, userID, from, to)
}

func (mock *expenseRepoMock) SumRegularCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}
	mock.lockSumRegular.RLock()
	calls = mock.calls.SumRegular
	mock.lockSumRegular.RUnlock()
	return calls
}

func (mock *expenseRepoMock) DeleteRegular(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteRegularFunc == nil {
		panic("expenseRepoMock.DeleteRegularFunc: method is nil but expenseRepo.DeleteRegular was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDeleteRegular.Lock()
	mock.calls.DeleteRegular = append(mock.calls.DeleteRegular, callInfo)
	mock.lockDeleteRegular.Unlock()
	return mock.DeleteRegularFunc(ctx, userID, id)
}

func (mock *expenseRepoMock) DeleteRegularCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockDeleteRegular.RLock()
	calls = mock.calls.DeleteRegular
	mock.lockDeleteRegular.RUnlock()
	return calls
}

func (mock *expenseRepoMock) CreateFixed(ctx context.Context, e *domain.FixedExpense) (*domain.FixedExpense, error) {
	if mock.CreateFixedFunc == nil {
		panic("expenseRepoMock.CreateFixedFunc: method is nil but expenseRepo.CreateFixed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.FixedExpense
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreateFixed.Lock()
	mock.calls.CreateFixed = append(mock.calls.CreateFixed, callInfo)
	mock.lockCreateFixed.Unlock()
	return mock.CreateFixedFunc(ctx, e)
}

func (mock *expenseRepoMock) CreateFixedCalls() []struct {
	Ctx context.Context
	E   *domain.FixedExpense
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.FixedExpense
	}
	mock.lockCreateFixed.RLock()
	calls = mock.calls.CreateFixed
	mock.lockCreateFixed.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListFixed(ctx context.Context, userID uuid.UUID) ([]domain.FixedExpense, error) {
	if mock.ListFixedFunc == nil {
		panic("expenseRepoMock.ListFixedFunc: method is nil but expenseRepo.ListFixed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListFixed.Lock()
	mock.calls.ListFixed = append(mock.calls.ListFixed, callInfo)
	mock.lockListFixed.Unlock()
	return mock.ListFixedFunc(ctx, userID)
}

func (mock *expenseRepoMock) ListFixedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListFixed.RLock()
	calls = mock.calls.ListFixed
	mock.lockListFixed.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListUnpaidDue(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.FixedExpense, error) {
	if mock.ListUnpaidDueFunc == nil {
		panic("expenseRepoMock.ListUnpaidDueFunc: method is nil but expenseRepo.ListUnpaidDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockListUnpaidDue.Lock()
	mock.calls.ListUnpaidDue = append(mock.calls.ListUnpaidDue, callInfo)
	mock.lockListUnpaidDue.Unlock()
	return mock.ListUnpaidDueFunc(ctx, userID, from, to)
}

func (mock *expenseRepoMock) ListUnpaidDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}
	mock.lockListUnpaidDue.RLock()
	calls = mock.calls.ListUnpaidDue
	mock.lockListUnpaidDue.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListRecentFixed(ctx context.Context, userID uuid.UUID, limit int) ([]domain.FixedExpense, error) {
	if mock.ListRecentFixedFunc == nil {
		panic("expenseRepoMock.ListRecentFixedFunc: method is nil but expenseRepo.ListRecentFixed was just called")
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
	mock.lockListRecentFixed.Lock()
	mock.calls.ListRecentFixed = append(mock.calls.ListRecentFixed, callInfo)
	mock.lockListRecentFixed.Unlock()
	return mock.ListRecentFixedFunc(ctx, userID, limit)
}

func (mock *expenseRepoMock) ListRecentFixedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListRecentFixed.RLock()
	calls = mock.calls.ListRecentFixed
	mock.lockListRecentFixed.RUnlock()
	return calls
}

func (mock *expenseRepoMock) SetPaid(ctx context.Context, userID uuid.UUID, id uuid.UUID, paid bool, paidAt *time.Time) (*domain.FixedExpense, error) {
	if mock.SetPaidFunc == nil {
		panic("expenseRepoMock.SetPaidFunc: method is nil but expenseRepo.SetPaid was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Paid   bool
		PaidAt *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
		Paid:   paid,
		PaidAt: paidAt,
	}
	mock.lockSetPaid.Lock()
	mock.calls.SetPaid = append(mock.calls.SetPaid, callInfo)
	mock.lockSetPaid.Unlock()
	return mock.SetPaidFunc(ctx, userID, id, paid, paidAt)
}

func (mock *expenseRepoMock) SetPaidCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Paid   bool
	PaidAt *time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Paid   bool
		PaidAt *time.Time
	}
	mock.lockSetPaid.RLock()
	calls = mock.calls.SetPaid
	mock.lockSetPaid.RUnlock()
	return calls
}

func (mock *expenseRepoMock) DeleteFixed(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFixedFunc == nil {
		panic("expenseRepoMock.DeleteFixedFunc: method is nil but expenseRepo.DeleteFixed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDeleteFixed.Lock()
	mock.calls.DeleteFixed = append(mock.calls.DeleteFixed, callInfo)
	mock.lockDeleteFixed.Unlock()
	return mock.DeleteFixedFunc(ctx, userID, id)
}

func (mock *expenseRepoMock) DeleteFixedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockDeleteFixed.RLock()
	calls = mock.calls.DeleteFixed
	mock.lockDeleteFixed.RUnlock()
	return calls
}

package medicine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ medicineRepo = &medicineRepoMock{}

type medicineRepoMock struct {
	CreateFunc     func(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Medicine, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Medicine, error)
	ListPageFunc   func(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Medicine, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Medicine
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListPage []struct {
			Ctx     context.Context
			AfterID uuid.UUID
			Limit   int
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockListPage   sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *medicineRepoMock) Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error) {
	if mock.CreateFunc == nil {
		panic("medicineRepoMock.CreateFunc: method is nil but medicineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Medicine
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *medicineRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Medicine
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Medicine
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *medicineRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Medicine, error) {
	if mock.GetByIDFunc == nil {
		panic("medicineRepoMock.GetByIDFunc: method is nil but medicineRepo.GetByID was just called")
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
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *medicineRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *medicineRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medicine, error) {
	if mock.ListByUserFunc == nil {
		panic("medicineRepoMock.ListByUserFunc: method is nil but medicineRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *medicineRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *medicineRepoMock) ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Medicine, error) {
	if mock.ListPageFunc == nil {
		panic("medicineRepoMock.ListPageFunc: method is nil but medicineRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AfterID uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		AfterID: afterID,
		Limit:   limit,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, afterID, limit)
}

func (mock *medicineRepoMock) ListPageCalls() []struct {
	Ctx     context.Context
	AfterID uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		AfterID uuid.UUID
		Limit   int
	}
	mock.lockListPage.RLock()
	calls = mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *medicineRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("medicineRepoMock.DeleteFunc: method is nil but medicineRepo.Delete was just called")
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
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *medicineRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

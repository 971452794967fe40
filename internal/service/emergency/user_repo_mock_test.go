package emergency

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListCaregiversFunc func(ctx context.Context, elderID uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCaregivers []struct {
			Ctx     context.Context
			ElderID uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockListCaregivers sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) ListCaregivers(ctx context.Context, elderID uuid.UUID) ([]domain.User, error) {
	if mock.ListCaregiversFunc == nil {
		panic("userRepoMock.ListCaregiversFunc: method is nil but userRepo.ListCaregivers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ElderID uuid.UUID
	}{
		Ctx:     ctx,
		ElderID: elderID,
	}
	mock.lockListCaregivers.Lock()
	mock.calls.ListCaregivers = append(mock.calls.ListCaregivers, callInfo)
	mock.lockListCaregivers.Unlock()
	return mock.ListCaregiversFunc(ctx, elderID)
}

func (mock *userRepoMock) ListCaregiversCalls() []struct {
	Ctx     context.Context
	ElderID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		ElderID uuid.UUID
	}
	mock.lockListCaregivers.RLock()
	calls = mock.calls.ListCaregivers
	mock.lockListCaregivers.RUnlock()
	return calls
}

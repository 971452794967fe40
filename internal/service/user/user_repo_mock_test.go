package user

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
	ListFunc           func(ctx context.Context, limit int, offset int) ([]domain.User, error)
	CountFunc          func(ctx context.Context) (int, error)
	UpdateProfileFunc  func(ctx context.Context, u *domain.User) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCaregivers []struct {
			Ctx     context.Context
			ElderID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Count []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockGetByID        sync.RWMutex
	lockListCaregivers sync.RWMutex
	lockList           sync.RWMutex
	lockCount          sync.RWMutex
	lockUpdateProfile  sync.RWMutex
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

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, u)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

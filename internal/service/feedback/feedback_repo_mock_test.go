package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc    func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	ListFunc      func(ctx context.Context, limit int) ([]domain.Feedback, error)
	SetStatusFunc func(ctx context.Context, id uuid.UUID, status domain.FeedbackStatus) (*domain.Feedback, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
		}
		List []struct {
			Ctx   context.Context
			Limit int
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.FeedbackStatus
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate    sync.RWMutex
	lockList      sync.RWMutex
	lockSetStatus sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	var calls []struct {
		Ctx context.Context
		F   *domain.Feedback
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) List(ctx context.Context, limit int) ([]domain.Feedback, error) {
	if mock.ListFunc == nil {
		panic("feedbackRepoMock.ListFunc: method is nil but feedbackRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *feedbackRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.FeedbackStatus) (*domain.Feedback, error) {
	if mock.SetStatusFunc == nil {
		panic("feedbackRepoMock.SetStatusFunc: method is nil but feedbackRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.FeedbackStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *feedbackRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.FeedbackStatus
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.FeedbackStatus
	}
	mock.lockSetStatus.RLock()
	calls = mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("feedbackRepoMock.DeleteFunc: method is nil but feedbackRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *feedbackRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

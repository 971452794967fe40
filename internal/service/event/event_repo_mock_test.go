package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc            func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFromFunc          func(ctx context.Context, from time.Time) ([]domain.Event, error)
	ListByParticipantFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Event, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	AddParticipantFunc    func(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, joinedAt time.Time) error
	RemoveParticipantFunc func(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error
	ListParticipantsFunc  func(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Event
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListFrom []struct {
			Ctx  context.Context
			From time.Time
		}
		ListByParticipant []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AddParticipant []struct {
			Ctx      context.Context
			EventID  uuid.UUID
			UserID   uuid.UUID
			JoinedAt time.Time
		}
		RemoveParticipant []struct {
			Ctx     context.Context
			EventID uuid.UUID
			UserID  uuid.UUID
		}
		ListParticipants []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockListFrom          sync.RWMutex
	lockListByParticipant sync.RWMutex
	lockDelete            sync.RWMutex
	lockAddParticipant    sync.RWMutex
	lockRemoveParticipant sync.RWMutex
	lockListParticipants  sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Event
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
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

func (mock *eventRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetForUpdateFunc == nil {
		panic("eventRepoMock.GetForUpdateFunc: method is nil but eventRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *eventRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListFrom(ctx context.Context, from time.Time) ([]domain.Event, error) {
	if mock.ListFromFunc == nil {
		panic("eventRepoMock.ListFromFunc: method is nil but eventRepo.ListFrom was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
	}{
		Ctx:  ctx,
		From: from,
	}
	mock.lockListFrom.Lock()
	mock.calls.ListFrom = append(mock.calls.ListFrom, callInfo)
	mock.lockListFrom.Unlock()
	return mock.ListFromFunc(ctx, from)
}

func (mock *eventRepoMock) ListFromCalls() []struct {
	Ctx  context.Context
	From time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
	}
	mock.lockListFrom.RLock()
	calls = mock.calls.ListFrom
	mock.lockListFrom.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	if mock.ListByParticipantFunc == nil {
		panic("eventRepoMock.ListByParticipantFunc: method is nil but eventRepo.ListByParticipant was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByParticipant.Lock()
	mock.calls.ListByParticipant = append(mock.calls.ListByParticipant, callInfo)
	mock.lockListByParticipant.Unlock()
	return mock.ListByParticipantFunc(ctx, userID)
}

func (mock *eventRepoMock) ListByParticipantCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListByParticipant.RLock()
	calls = mock.calls.ListByParticipant
	mock.lockListByParticipant.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
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

func (mock *eventRepoMock) DeleteCalls() []struct {
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

func (mock *eventRepoMock) AddParticipant(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, joinedAt time.Time) error {
	if mock.AddParticipantFunc == nil {
		panic("eventRepoMock.AddParticipantFunc: method is nil but eventRepo.AddParticipant was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EventID  uuid.UUID
		UserID   uuid.UUID
		JoinedAt time.Time
	}{
		Ctx:      ctx,
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: joinedAt,
	}
	mock.lockAddParticipant.Lock()
	mock.calls.AddParticipant = append(mock.calls.AddParticipant, callInfo)
	mock.lockAddParticipant.Unlock()
	return mock.AddParticipantFunc(ctx, eventID, userID, joinedAt)
}

func (mock *eventRepoMock) AddParticipantCalls() []struct {
	Ctx      context.Context
	EventID  uuid.UUID
	UserID   uuid.UUID
	JoinedAt time.Time
} {
	var calls []struct {
		Ctx      context.Context
		EventID  uuid.UUID
		UserID   uuid.UUID
		JoinedAt time.Time
	}
	mock.lockAddParticipant.RLock()
	calls = mock.calls.AddParticipant
	mock.lockAddParticipant.RUnlock()
	return calls
}

func (mock *eventRepoMock) RemoveParticipant(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveParticipantFunc == nil {
		panic("eventRepoMock.RemoveParticipantFunc: method is nil but eventRepo.RemoveParticipant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		UserID  uuid.UUID
	}{
		Ctx:     ctx,
		EventID: eventID,
		UserID:  userID,
	}
	mock.lockRemoveParticipant.Lock()
	mock.calls.RemoveParticipant = append(mock.calls.RemoveParticipant, callInfo)
	mock.lockRemoveParticipant.Unlock()
	return mock.RemoveParticipantFunc(ctx, eventID, userID)
}

func (mock *eventRepoMock) RemoveParticipantCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	UserID  uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EventID uuid.UUID
		UserID  uuid.UUID
	}
	mock.lockRemoveParticipant.RLock()
	calls = mock.calls.RemoveParticipant
	mock.lockRemoveParticipant.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	if mock.ListParticipantsFunc == nil {
		panic("eventRepoMock.ListParticipantsFunc: method is nil but eventRepo.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		EventID: eventID,
	}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx, eventID)
}

func (mock *eventRepoMock) ListParticipantsCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EventID uuid.UUID
	}
	mock.lockListParticipants.RLock()
	calls = mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}

package medicine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	InsertBatchFunc      func(ctx context.Context, entries []domain.ScheduleEntry) (int64, error)
	ListBetweenFunc      func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, taken *bool) ([]domain.ScheduleEntry, error)
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.ScheduleEntry, error)
	SetTakenFunc         func(ctx context.Context, userID uuid.UUID, id uuid.UUID, taken bool, takenAt *time.Time, expectedVersion *int) (*domain.ScheduleEntry, error)
	DeleteByMedicineFunc func(ctx context.Context, userID uuid.UUID, medicineID uuid.UUID) (int64, error)

	calls struct {
		InsertBatch []struct {
			Ctx     context.Context
			Entries []domain.ScheduleEntry
		}
		ListBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
			Taken  *bool
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		SetTaken []struct {
			Ctx             context.Context
			UserID          uuid.UUID
			ID              uuid.UUID
			Taken           bool
			TakenAt         *time.Time
			ExpectedVersion *int
		}
		DeleteByMedicine []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			MedicineID uuid.UUID
		}
	}
	lockInsertBatch      sync.RWMutex
	lockListBetween      sync.RWMutex
	lockGetByID          sync.RWMutex
	lockSetTaken         sync.RWMutex
	lockDeleteByMedicine sync.RWMutex
}

func (mock *scheduleRepoMock) InsertBatch(ctx context.Context, entries []domain.ScheduleEntry) (int64, error) {
	if mock.InsertBatchFunc == nil {
		panic("scheduleRepoMock.InsertBatchFunc: method is nil but scheduleRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.ScheduleEntry
	}{
		Ctx:     ctx,
		Entries: entries,
	}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, entries)
}

func (mock *scheduleRepoMock) InsertBatchCalls() []struct {
	Ctx     context.Context
	Entries []domain.ScheduleEntry
} {
	var calls []struct {
		Ctx     context.Context
		Entries []domain.ScheduleEntry
	}
	mock.lockInsertBatch.RLock()
	calls = mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) ListBetween(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, taken *bool) ([]domain.ScheduleEntry, error) {
	if mock.ListBetweenFunc == nil {
		panic("scheduleRepoMock.ListBetweenFunc: method is nil but scheduleRepo.ListBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
		Taken  *bool
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
		Taken:  taken,
	}
	mock.lockListBetween.Lock()
	mock.calls.ListBetween = append(mock.calls.ListBetween, callInfo)
	mock.lockListBetween.Unlock()
	return mock.ListBetweenFunc(ctx, userID, from, to, taken)
}

func (mock *scheduleRepoMock) ListBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Taken  *bool
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
		Taken  *bool
	}
	mock.lockListBetween.RLock()
	calls = mock.calls.ListBetween
	mock.lockListBetween.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.ScheduleEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("scheduleRepoMock.GetByIDFunc: method is nil but scheduleRepo.GetByID was just called")
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

func (mock *scheduleRepoMock) GetByIDCalls() []struct {
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

func (mock *scheduleRepoMock) SetTaken(ctx context.Context, userID uuid.UUID, id uuid.UUID, taken bool, takenAt *time.Time, expectedVersion *int) (*domain.ScheduleEntry, error) {
	if mock.SetTakenFunc == nil {
		panic("scheduleRepoMock.SetTakenFunc: method is nil but scheduleRepo.SetTaken was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          uuid.UUID
		ID              uuid.UUID
		Taken           bool
		TakenAt         *time.Time
		ExpectedVersion *int
	}{
		Ctx:             ctx,
		UserID:          userID,
		ID:              id,
		Taken:           taken,
		TakenAt:         takenAt,
		ExpectedVersion: expectedVersion,
	}
	mock.lockSetTaken.Lock()
	mock.calls.SetTaken = append(mock.calls.SetTaken, callInfo)
	mock.lockSetTaken.Unlock()
	return mock.SetTakenFunc(ctx, userID, id, taken, takenAt, expectedVersion)
}

func (mock *scheduleRepoMock) SetTakenCalls() []struct {
	Ctx             context.Context
	UserID          uuid.UUID
	ID              uuid.UUID
	Taken           bool
	TakenAt         *time.Time
	ExpectedVersion *int
} {
	var calls []struct {
		Ctx             context.Context
		UserID          uuid.UUID
		ID              uuid.UUID
		Taken           bool
		TakenAt         *time.Time
		ExpectedVersion *int
	}
	mock.lockSetTaken.RLock()
	calls = mock.calls.SetTaken
	mock.lockSetTaken.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) DeleteByMedicine(ctx context.Context, userID uuid.UUID, medicineID uuid.UUID) (int64, error) {
	if mock.DeleteByMedicineFunc == nil {
		panic("scheduleRepoMock.DeleteByMedicineFunc: method is nil but scheduleRepo.DeleteByMedicine was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		MedicineID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		MedicineID: medicineID,
	}
	mock.lockDeleteByMedicine.Lock()
	mock.calls.DeleteByMedicine = append(mock.calls.DeleteByMedicine, callInfo)
	mock.lockDeleteByMedicine.Unlock()
	return mock.DeleteByMedicineFunc(ctx, userID, medicineID)
}

func (mock *scheduleRepoMock) DeleteByMedicineCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	MedicineID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		MedicineID uuid.UUID
	}
	mock.lockDeleteByMedicine.RLock()
	calls = mock.calls.DeleteByMedicine
	mock.lockDeleteByMedicine.RUnlock()
	return calls
}

package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

var _ tutorialService = &tutorialServiceMock{}

type tutorialServiceMock struct {
	RecentFunc func(ctx context.Context, limit int) ([]domain.TutorialRequest, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *tutorialServiceMock) Recent(ctx context.Context, limit int) ([]domain.TutorialRequest, error) {
	if mock.RecentFunc == nil {
		panic("tutorialServiceMock.RecentFunc: method is nil but tutorialService.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *tutorialServiceMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockRecent.RLock()
	calls = mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

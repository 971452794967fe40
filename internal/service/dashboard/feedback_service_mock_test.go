package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/agewell-backend/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	RecentFunc func(ctx context.Context, limit int) ([]feedback.Item, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *feedbackServiceMock) Recent(ctx context.Context, limit int) ([]feedback.Item, error) {
	if mock.RecentFunc == nil {
		panic("feedbackServiceMock.RecentFunc: method is nil but feedbackService.Recent was just called")
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

func (mock *feedbackServiceMock) RecentCalls() []struct {
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

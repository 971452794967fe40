package dashboard

import (
	"context"
	"sync"
	"time"
)

var _ scheduleCounter = &scheduleCounterMock{}

type scheduleCounterMock struct {
	CountBetweenFunc func(ctx context.Context, from time.Time, to time.Time) (int, int, error)

	calls struct {
		CountBetween []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
	}
	lockCountBetween sync.RWMutex
}

func (mock *scheduleCounterMock) CountBetween(ctx context.Context, from time.Time, to time.Time) (int, int, error) {
	if mock.CountBetweenFunc == nil {
		panic("scheduleCounterMock.CountBetweenFunc: method is nil but scheduleCounter.CountBetween was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockCountBetween.Lock()
	mock.calls.CountBetween = append(mock.calls.CountBetween, callInfo)
	mock.lockCountBetween.Unlock()
	return mock.CountBetweenFunc(ctx, from, to)
}

func (mock *scheduleCounterMock) CountBetweenCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockCountBetween.RLock()
	calls = mock.calls.CountBetween
	mock.lockCountBetween.RUnlock()
	return calls
}

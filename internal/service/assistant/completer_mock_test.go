package assistant

import (
	"context"
	"sync"

	"github.com/heartmarshall/agewell-backend/internal/provider"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, messages []provider.ChatMessage, opts provider.ChatOptions) (*provider.ChatResult, error)

	calls struct {
		Complete []struct {
			Ctx      context.Context
			Messages []provider.ChatMessage
			Opts     provider.ChatOptions
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, messages []provider.ChatMessage, opts provider.ChatOptions) (*provider.ChatResult, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Messages []provider.ChatMessage
		Opts     provider.ChatOptions
	}{
		Ctx:      ctx,
		Messages: messages,
		Opts:     opts,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, messages, opts)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx      context.Context
	Messages []provider.ChatMessage
	Opts     provider.ChatOptions
} {
	var calls []struct {
		Ctx      context.Context
		Messages []provider.ChatMessage
		Opts     provider.ChatOptions
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

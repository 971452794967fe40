package emergency

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	EmergencyLogsPurgedFunc func(n int64)

	calls struct {
		EmergencyLogsPurged []struct {
			N int64
		}
	}
	lockEmergencyLogsPurged sync.RWMutex
}

func (mock *recorderMock) EmergencyLogsPurged(n int64) {
	if mock.EmergencyLogsPurgedFunc == nil {
		panic("recorderMock.EmergencyLogsPurgedFunc: method is nil but recorder.EmergencyLogsPurged was just called")
	}
	callInfo := struct {
		N int64
	}{
		N: n,
	}
	mock.lockEmergencyLogsPurged.Lock()
	mock.calls.EmergencyLogsPurged = append(mock.calls.EmergencyLogsPurged, callInfo)
	mock.lockEmergencyLogsPurged.Unlock()
	mock.EmergencyLogsPurgedFunc(n)
}

func (mock *recorderMock) EmergencyLogsPurgedCalls() []struct {
	N int64
} {
	var calls []struct {
		N int64
	}
	mock.lockEmergencyLogsPurged.RLock()
	calls = mock.calls.EmergencyLogsPurged
	mock.lockEmergencyLogsPurged.RUnlock()
	return calls
}

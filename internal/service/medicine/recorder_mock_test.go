package medicine

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ScheduleEntriesGeneratedFunc func(source string, n int64)
	DoseMarkedFunc               func(taken bool)

	calls struct {
		ScheduleEntriesGenerated []struct {
			Source string
			N      int64
		}
		DoseMarked []struct {
			Taken bool
		}
	}
	lockScheduleEntriesGenerated sync.RWMutex
	lockDoseMarked               sync.RWMutex
}

func (mock *recorderMock) ScheduleEntriesGenerated(source string, n int64) {
	if mock.ScheduleEntriesGeneratedFunc == nil {
		panic("recorderMock.ScheduleEntriesGeneratedFunc: method is nil but recorder.ScheduleEntriesGenerated was just called")
	}
	callInfo := struct {
		Source string
		N      int64
	}{
		Source: source,
		N:      n,
	}
	mock.lockScheduleEntriesGenerated.Lock()
	mock.calls.ScheduleEntriesGenerated = append(mock.calls.ScheduleEntriesGenerated, callInfo)
	mock.lockScheduleEntriesGenerated.Unlock()
	mock.ScheduleEntriesGeneratedFunc(source, n)
}

func (mock *recorderMock) ScheduleEntriesGeneratedCalls() []struct {
	Source string
	N      int64
} {
	var calls []struct {
		Source string
		N      int64
	}
	mock.lockScheduleEntriesGenerated.RLock()
	calls = mock.calls.ScheduleEntriesGenerated
	mock.lockScheduleEntriesGenerated.RUnlock()
	return calls
}

func (mock *recorderMock) DoseMarked(taken bool) {
	if mock.DoseMarkedFunc == nil {
		panic("recorderMock.DoseMarkedFunc: method is nil but recorder.DoseMarked was just called")
	}
	callInfo := struct {
		Taken bool
	}{
		Taken: taken,
	}
	mock.lockDoseMarked.Lock()
	mock.calls.DoseMarked = append(mock.calls.DoseMarked, callInfo)
	mock.lockDoseMarked.Unlock()
	mock.DoseMarkedFunc(taken)
}

func (mock *recorderMock) DoseMarkedCalls() []struct {
	Taken bool
} {
	var calls []struct {
		Taken bool
	}
	mock.lockDoseMarked.RLock()
	calls = mock.calls.DoseMarked
	mock.lockDoseMarked.RUnlock()
	return calls
}

package concept

import "sync/atomic"

// Observer is notified of every coercion outcome that involved a value.
// Absent content is neither accepted nor rejected and is not reported.
type Observer interface {
	Coerced()
	Rejected(kind Kind)
}

type nopObserver struct{}

func (nopObserver) Coerced()      {}
func (nopObserver) Rejected(Kind) {}

var observerSlot atomic.Pointer[Observer]

// SetObserver installs o for all subsequent coercions. A nil o disables reporting.
func SetObserver(o Observer) {
	if o == nil {
		observerSlot.Store(nil)
		return
	}
	observerSlot.Store(&o)
}

func currentObserver() Observer {
	if o := observerSlot.Load(); o != nil {
		return *o
	}
	return nopObserver{}
}

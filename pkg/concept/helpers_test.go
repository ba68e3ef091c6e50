package concept

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs routes the coercion sink to an in-memory core for the duration of t
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

type countingObserver struct {
	coerced  int
	rejected map[Kind]int
}

func (o *countingObserver) Coerced() { o.coerced++ }

func (o *countingObserver) Rejected(kind Kind) {
	if o.rejected == nil {
		o.rejected = make(map[Kind]int)
	}
	o.rejected[kind]++
}

func observeCoercions(t *testing.T) *countingObserver {
	t.Helper()
	o := &countingObserver{}
	SetObserver(o)
	t.Cleanup(func() { SetObserver(nil) })
	return o
}

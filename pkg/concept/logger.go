package concept

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var sink atomic.Pointer[zap.Logger]

// SetLogger installs the sink that receives coercion rejections.
// A nil logger restores the default, zap.L().
func SetLogger(logger *zap.Logger) {
	sink.Store(logger)
}

func logger() *zap.Logger {
	if l := sink.Load(); l != nil {
		return l
	}
	return zap.L()
}

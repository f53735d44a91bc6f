// Package tracelog is the diagnostic hook for lifecycle trace messages.
// The default logger discards everything; embedding binaries that want to
// watch bind/unbind transitions install their own zerolog.Logger. The hook
// is purely observational and never affects holder behavior.
package tracelog

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// Set replaces the process-wide trace logger. Safe for concurrent use.
func Set(l zerolog.Logger) {
	logger.Store(&l)
}

// L returns the current trace logger.
func L() *zerolog.Logger {
	return logger.Load()
}

package treebuild

import (
	"sync/atomic"

	"github.com/galform/mergertree/pkg/utils"
)

// warnCounter wraps a Logger to additionally count Warn calls, so the
// orchestrator can report a warning count in BuildSummary without parsing
// log output.
type warnCounter struct {
	utils.Logger
	count atomic.Int64
}

func newWarnCounter(inner utils.Logger) *warnCounter {
	return &warnCounter{Logger: inner}
}

func (w *warnCounter) Warn(msg string, args ...interface{}) {
	w.count.Add(1)
	w.Logger.Warn(msg, args...)
}

func (w *warnCounter) Count() int {
	return int(w.count.Load())
}

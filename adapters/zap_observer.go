// File: adapters/zap_observer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structured-logging adapter for container lifecycle events.
// Observers are opt-in diagnostics and sit entirely outside the hot path.

package adapters

import (
	"go.uber.org/zap"

	"github.com/momentics/fixvec/api"
)

// ZapObserver emits one structured log entry per lifecycle event.
// Push/pop transitions log at debug level; overflow logs at warn level
// because it usually signals a mis-sized container.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver wraps a zap logger as an api.Observer.
// A nil logger is replaced with zap.NewNop().
func NewZapObserver(log *zap.Logger) *ZapObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapObserver{log: log}
}

// OnVecEvent implements api.Observer.
func (o *ZapObserver) OnVecEvent(e api.Event) {
	fields := []zap.Field{
		zap.Int("len", e.Len),
		zap.Int("cap", e.Cap),
	}
	switch e.Type {
	case api.EventOverflow:
		o.log.Warn("vec overflow", fields...)
	case api.EventClose:
		o.log.Info("vec closed", fields...)
	default:
		o.log.Debug("vec "+e.Type.String(), fields...)
	}
}

// FuncObserver adapts a plain function to api.Observer.
type FuncObserver func(api.Event)

// OnVecEvent implements api.Observer.
func (f FuncObserver) OnVecEvent(e api.Event) { f(e) }

var (
	_ api.Observer = (*ZapObserver)(nil)
	_ api.Observer = (FuncObserver)(nil)
)

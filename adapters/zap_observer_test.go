// File: adapters/zap_observer_test.go
// Author: momentics <momentics@gmail.com>

package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/momentics/fixvec/adapters"
	"github.com/momentics/fixvec/api"
	"github.com/momentics/fixvec/vec"
)

func TestZapObserverLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := adapters.NewZapObserver(zap.New(core))

	v := vec.New[int](1, vec.WithObserver[int](obs))
	require.NoError(t, v.Push(1))
	require.ErrorIs(t, v.Push(2), api.ErrOverflow)
	_, ok := v.Pop()
	require.True(t, ok)
	require.NoError(t, v.Close())

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "vec push", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)

	assert.Equal(t, "vec overflow", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, "vec pop", entries[2].Message)
	assert.Equal(t, "vec closed", entries[3].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[3].Level)

	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 1, ctx["len"])
	assert.EqualValues(t, 1, ctx["cap"])
}

func TestZapObserverNilLogger(t *testing.T) {
	obs := adapters.NewZapObserver(nil)
	assert.NotPanics(t, func() {
		obs.OnVecEvent(api.Event{Type: api.EventPush, Len: 1, Cap: 2})
	})
}

func TestFuncObserver(t *testing.T) {
	var seen []api.EventType
	v := vec.New[int](2, vec.WithObserver[int](adapters.FuncObserver(func(e api.Event) {
		seen = append(seen, e.Type)
	})))
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Close())
	assert.Equal(t, []api.EventType{api.EventPush, api.EventPop, api.EventClose}, seen)
}

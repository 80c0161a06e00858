package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error without calling hooks", func(t *testing.T) {
		app := New()
		hookCalled := false
		app.AddShutdownHook("db", func(ctx context.Context) error {
			hookCalled = true
			return nil
		})

		want := errors.New("listen tcp :8080: bind: address already in use")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
		assert.False(t, hookCalled)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := New()
		var mu sync.Mutex
		var order []string
		for _, name := range []string{"db", "http", "jobs"} {
			name := name
			app.AddShutdownHook(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"jobs", "http", "db"}, order)
	})

	t.Run("waits for run to return after the hooks", func(t *testing.T) {
		app := New()
		stopped := make(chan struct{})
		app.AddShutdownHook("http", func(ctx context.Context) error {
			close(stopped)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		returned := false
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-stopped
			returned = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, returned)
	})

	t.Run("hook errors are joined and logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		app := New(WithLogger(zap.New(core)), WithShutdownTimeout(time.Second))
		want := errors.New("close failed")
		app.AddShutdownHook("db", func(ctx context.Context) error {
			return want
		})
		app.AddShutdownHook("http", func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, want)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "db", logs.All()[0].ContextMap()["hook"])
	})

	t.Run("hook registered from inside run callback", func(t *testing.T) {
		app := New()
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})
}

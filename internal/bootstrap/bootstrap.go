// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 15 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []shutdownHook
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

type Option func(*App)

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithShutdownTimeout bounds the time all shutdown hooks may take together.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = d
	}
}

// New creates a new App.
func New(opts ...Option) *App {
	a := &App{
		logger:          zap.NewNop(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run sets up signal handling and executes the run function.
// On SIGINT or SIGTERM, or when ctx is canceled, it calls the shutdown hooks in LIFO order
// and waits for run to return.
// If run returns before that, its error is returned and no hook is called.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down")
		shutdownErr := a.shutdown()
		return errors.Join(shutdownErr, <-errCh)
	case err := <-errCh:
		if ctx.Err() != nil {
			return errors.Join(a.shutdown(), err)
		}
		return err
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		hook := a.hooks[i]
		if err := hook.fn(ctx); err != nil {
			a.logger.Error("Shutdown hook failed", zap.String("hook", hook.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		a.logger.Debug("Shutdown hook finished", zap.String("hook", hook.name))
	}
	return errors.Join(errs...)
}

// Package app implements the application layer for ecswatch.
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/ecswatch/internal/adapters/render"
	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/ecswatch/internal/core/ports"
	"go.trai.ch/ecswatch/internal/engine/watcher"
)

// DefaultIntervalSeconds matches the original two-second poll cadence.
const DefaultIntervalSeconds = 2

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.ClusterClientFactory
	logger       ports.Logger
	tracer       ports.Tracer
	clock        clockwork.Clock
	renderer     ports.Renderer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory ports.ClusterClientFactory,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		logger:       log,
		tracer:       tracer,
		clock:        clockwork.NewRealClock(),
	}
}

// WithClock replaces the wall clock. This is primarily used for testing.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithRenderer replaces the stdout renderer. This is primarily used for
// testing to capture emissions.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WatchOptions carries the flag values for the watch command. Zero values
// mean "not set" and fall through to environment variables, the config
// file, and finally built-in defaults.
type WatchOptions struct {
	Cluster         string
	Region          string
	Profile         string
	IntervalSeconds int
	OneShot         bool
	Detail          bool
	LogJSON         bool
}

// Watch resolves configuration, builds the cluster client, and runs the
// watch loop until it stops. Operator cancellation returns nil; fatal watch
// failures are wrapped in domain.ErrWatchFailed for exit-code handling.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.LogJSON {
		if js, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			js.SetJSON(true)
		}
	}

	// 1. Load file defaults
	settings, err := a.configLoader.Load()
	if err != nil {
		return err
	}

	// 2. Resolve effective configuration: flag > environment > file > default
	cluster := firstNonEmpty(opts.Cluster, os.Getenv("AWS_ECS_CLUSTER"), settings.Cluster)
	region := firstNonEmpty(opts.Region, os.Getenv("AWS_DEFAULT_REGION"), settings.Region)
	profile := firstNonEmpty(opts.Profile, os.Getenv("AWS_PROFILE"), settings.Profile)
	interval := firstPositive(opts.IntervalSeconds, settings.IntervalSeconds, DefaultIntervalSeconds)
	detail := opts.Detail || settings.Detail

	if cluster == "" {
		return domain.ErrMissingCluster
	}
	if opts.IntervalSeconds < 0 || settings.IntervalSeconds < 0 {
		return domain.ErrInvalidInterval
	}

	// 3. Build the cluster client
	client, err := a.factory.New(ctx, region, profile)
	if err != nil {
		return err
	}

	// 4. Initialize the renderer unless a test injected one
	renderer := a.renderer
	if renderer == nil {
		renderer = render.NewRenderer(os.Stdout)
	}

	defer func() {
		if s, ok := a.tracer.(interface{ Shutdown(context.Context) error }); ok {
			_ = s.Shutdown(context.WithoutCancel(ctx))
		}
	}()

	// 5. Run the watch loop
	w := watcher.New(client, renderer, a.logger, a.tracer, a.clock)
	err = w.Run(ctx, watcher.Options{
		Cluster:  cluster,
		Interval: time.Duration(interval) * time.Second,
		OneShot:  opts.OneShot,
		Detail:   detail,
	})
	switch {
	case err == nil:
		return nil
	case domain.IsCancellation(err):
		return nil
	default:
		return errors.Join(domain.ErrWatchFailed, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

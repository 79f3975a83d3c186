// Package watcher implements the poll/compare/emit loop at the core of
// ecswatch. One Watcher drives one cluster; cycles never overlap.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/ecswatch/internal/core/ports"
)

// Watcher polls a cluster on a fixed interval, reduces each response to a
// ClusterSummary, and emits through the renderer only when the summary
// differs from the last one shown.
type Watcher struct {
	client   ports.ClusterClient
	renderer ports.Renderer
	logger   ports.Logger
	tracer   ports.Tracer
	clock    clockwork.Clock
}

// Options configures a single watch run.
type Options struct {
	// Cluster is the cluster identifier to watch. Required.
	Cluster string
	// Interval is the fixed delay between cycles. Must be positive.
	Interval time.Duration
	// OneShot stops after the first emission.
	OneShot bool
	// Detail renders the raw describe payload instead of the summary table.
	// Change detection still operates on the reduced summary.
	Detail bool
}

// New creates a Watcher with the given collaborators.
func New(
	client ports.ClusterClient,
	renderer ports.Renderer,
	log ports.Logger,
	tracer ports.Tracer,
	clock clockwork.Clock,
) *Watcher {
	return &Watcher{
		client:   client,
		renderer: renderer,
		logger:   log,
		tracer:   tracer,
		clock:    clock,
	}
}

// Run drives the watch state machine:
//
//	Polling -> Comparing -> (Emitting | Sleeping) -> Polling ...
//
// The first cycle polls immediately, and the first successful cycle always
// emits, even for an empty cluster. Transient poll failures are logged to
// the diagnostic stream and retried on the next tick without touching the
// retained summary. Run returns nil after the first emission in one-shot
// mode, ctx.Err() on cancellation, and the error itself on fatal failures.
func (w *Watcher) Run(ctx context.Context, opts Options) error {
	if opts.Cluster == "" {
		return domain.ErrMissingCluster
	}
	if opts.Interval <= 0 {
		return domain.ErrInvalidInterval
	}

	// last is the summary most recently shown to the operator, nil until
	// the first emission. A fetched-but-unchanged summary never replaces
	// it, so representation drift cannot fabricate future diffs.
	var last *domain.ClusterSummary

	for {
		// Polling
		batch, err := w.poll(ctx, opts.Cluster)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil && domain.IsFatal(err):
			return err
		case err != nil:
			w.logger.Warn(fmt.Sprintf("poll failed, retrying next cycle: %v", err))
		default:
			// Comparing
			summary := domain.Summarize(w.clock.Now(), batch.Records)
			if last == nil || !summary.Equal(*last) {
				// Emitting
				if err := w.emit(summary, batch, opts.Detail); err != nil {
					return err
				}
				last = &summary
				if opts.OneShot {
					return nil
				}
			}
		}

		// Sleeping
		if err := w.sleep(ctx, opts.Interval); err != nil {
			return err
		}
	}
}

// poll runs one list+describe round trip under a trace span. The task set
// may change between the two calls; that is acceptable eventual consistency
// within a cycle. Partial describes proceed with the received subset.
func (w *Watcher) poll(ctx context.Context, cluster string) (*domain.TaskBatch, error) {
	ctx, span := w.tracer.Start(ctx, "watch.poll")
	defer span.End()
	span.SetAttribute("cluster", cluster)

	ids, err := w.client.ListTaskIDs(ctx, cluster)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	batch, err := w.client.DescribeTasks(ctx, cluster, ids)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if batch.Partial() {
		span.SetAttribute("failures", len(batch.Failures))
		w.logger.Warn(fmt.Sprintf(
			"%d of %d task(s) could not be described this cycle, summarizing the rest",
			len(batch.Failures), len(ids),
		))
	}
	span.SetAttribute("tasks", len(batch.Records))

	return batch, nil
}

// emit hands the cycle's result to the renderer. In detail mode the raw
// payload bypasses the summarizer entirely. A write failure is fatal.
func (w *Watcher) emit(summary domain.ClusterSummary, batch *domain.TaskBatch, detail bool) error {
	var err error
	if detail {
		err = w.renderer.RenderDetail(batch.Raw)
	} else {
		err = w.renderer.RenderSummary(summary)
	}
	if err != nil {
		return errors.Join(domain.ErrRenderFailed, err)
	}
	return nil
}

// sleep blocks for the configured interval, waking early on cancellation so
// the operator never waits out a full tick to exit.
func (w *Watcher) sleep(ctx context.Context, d time.Duration) error {
	timer := w.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

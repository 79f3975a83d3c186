// Package domain holds the core types for cluster watching: task records,
// summaries, and the error taxonomy. It performs no I/O.
package domain

import (
	"strings"
	"time"
)

// TaskRecord is one task's observable state at a single poll. Records are
// built fresh every cycle and never mutated.
type TaskRecord struct {
	// TaskID is the unique task identifier within the cluster (the ARN tail).
	TaskID string
	// DefinitionVersion is the short task definition reference, e.g. "web:42".
	DefinitionVersion string
	// DesiredStatus is the status the orchestrator is driving the task toward.
	DesiredStatus string
	// LastStatus is the most recently observed status.
	LastStatus string
	// Group is the task group (usually "service:<name>").
	Group string
	// StartedAt is the newest of the task's lifecycle timestamps.
	StartedAt time.Time
	// Images holds the short container image names, registry host dropped.
	Images []string
	// Health is the aggregated container health, populated in detail mode.
	Health string
}

// TaskBatch is the result of describing the current task set in one cycle.
type TaskBatch struct {
	// Records holds the reduced per-task records for every task that was
	// successfully described.
	Records []TaskRecord
	// Raw is the unreduced provider response, carried only for detail
	// rendering. It bypasses summarization entirely.
	Raw any
	// Failures lists task IDs that could not be described this cycle.
	// A non-empty list means the batch is partial.
	Failures []string
}

// Partial reports whether some tasks could not be described.
func (b *TaskBatch) Partial() bool {
	return len(b.Failures) > 0
}

// ShortID returns the final path segment of an ARN-style identifier.
// Identifiers without a separator are returned unchanged.
func ShortID(arn string) string {
	if i := strings.LastIndexByte(arn, '/'); i >= 0 {
		return arn[i+1:]
	}
	return arn
}

// ShortImage drops the registry host from a container image reference.
// Bare image names (no host part) are returned unchanged.
func ShortImage(image string) string {
	parts := strings.Split(image, "/")
	if len(parts) > 1 {
		return strings.Join(parts[1:], "/")
	}
	return image
}

// NewestTime returns the latest non-zero time in ts, or fallback when every
// entry is zero. Provider timestamps are optional per lifecycle stage, so a
// task's display time is the newest stage it has reached.
func NewestTime(fallback time.Time, ts ...time.Time) time.Time {
	newest := time.Time{}
	for _, t := range ts {
		if t.After(newest) {
			newest = t
		}
	}
	if newest.IsZero() {
		return fallback
	}
	return newest
}

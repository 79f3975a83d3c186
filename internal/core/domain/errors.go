package domain

import (
	"context"
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrClusterNotFound is returned when the target cluster does not exist.
	// The cluster identifier is fixed for the process lifetime, so this is fatal.
	ErrClusterNotFound = zerr.New("cluster not found")

	// ErrAuthFailed is returned when the provider rejects our credentials.
	// Credentials do not self-heal within a run, so this is fatal.
	ErrAuthFailed = zerr.New("authentication failed")

	// ErrThrottled is returned when the provider rate-limits a call.
	// The next scheduled cycle retries.
	ErrThrottled = zerr.New("request throttled")

	// ErrTransient is returned for recoverable network or provider failures.
	// The next scheduled cycle retries.
	ErrTransient = zerr.New("transient provider failure")

	// ErrPartialDescribe is returned when some but not all tasks could be
	// described. The cycle proceeds with the successfully described subset.
	ErrPartialDescribe = zerr.New("some tasks could not be described")

	// ErrRenderFailed is returned when writing an emission to the output
	// stream fails. No further progress is possible without output.
	ErrRenderFailed = zerr.New("failed to write output")

	// ErrMissingCluster is returned when no cluster identifier was provided
	// by flag, environment, or config file.
	ErrMissingCluster = zerr.New("no cluster specified")

	// ErrInvalidInterval is returned when the poll interval is not positive.
	ErrInvalidInterval = zerr.New("poll interval must be positive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatchFailed wraps any fatal watch loop failure for exit-code
	// classification in main.
	ErrWatchFailed = zerr.New("watch failed")
)

// IsFatal reports whether err must terminate the watch loop. Transient
// failures (throttling, network blips, partial describes) are retried on the
// next scheduled cycle; everything here is not worth retrying.
func IsFatal(err error) bool {
	return errors.Is(err, ErrClusterNotFound) ||
		errors.Is(err, ErrAuthFailed) ||
		errors.Is(err, ErrRenderFailed)
}

// IsCancellation reports whether err is an operator-initiated shutdown,
// which exits cleanly rather than as a failure.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}

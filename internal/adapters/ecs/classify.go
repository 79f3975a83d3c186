package ecs

import (
	"context"
	"errors"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/smithy-go"
	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// authErrorCodes are API error codes that mean our credentials are bad or
// expired. These do not self-heal within a run.
var authErrorCodes = map[string]bool{
	"AccessDeniedException":       true,
	"UnrecognizedClientException": true,
	"InvalidSignatureException":   true,
	"ExpiredTokenException":       true,
	"ExpiredToken":                true,
	"AuthFailure":                 true,
}

// throttleErrorCodes are API error codes for rate limiting.
var throttleErrorCodes = map[string]bool{
	"ThrottlingException":      true,
	"TooManyRequestsException": true,
	"RequestLimitExceeded":     true,
}

// classify maps an SDK error onto the domain taxonomy. Anything not
// recognized as fatal is transient: timeouts, connection resets, and
// server-side 5xx all retry on the next scheduled cycle.
func classify(err error, cluster string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var notFound *ecstypes.ClusterNotFoundException
	if errors.As(err, &notFound) {
		return zerr.With(domain.ErrClusterNotFound, "cluster", cluster)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case authErrorCodes[code]:
			return errors.Join(domain.ErrAuthFailed, err)
		case throttleErrorCodes[code]:
			return errors.Join(domain.ErrThrottled, err)
		}
	}

	return errors.Join(domain.ErrTransient, err)
}

package ecs

import (
	"context"
	"errors"
	"testing"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/ecswatch/internal/core/domain"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "api error"}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "cluster not found",
			err:  &ecstypes.ClusterNotFoundException{},
			want: domain.ErrClusterNotFound,
		},
		{
			name: "access denied",
			err:  apiError("AccessDeniedException"),
			want: domain.ErrAuthFailed,
		},
		{
			name: "expired token",
			err:  apiError("ExpiredTokenException"),
			want: domain.ErrAuthFailed,
		},
		{
			name: "unrecognized client",
			err:  apiError("UnrecognizedClientException"),
			want: domain.ErrAuthFailed,
		},
		{
			name: "throttled",
			err:  apiError("ThrottlingException"),
			want: domain.ErrThrottled,
		},
		{
			name: "request limit",
			err:  apiError("RequestLimitExceeded"),
			want: domain.ErrThrottled,
		},
		{
			name: "server error is transient",
			err:  apiError("ServerException"),
			want: domain.ErrTransient,
		},
		{
			name: "network error is transient",
			err:  errors.New("dial tcp: connection refused"),
			want: domain.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err, "prod")
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassify_ContextErrorsPassThrough(t *testing.T) {
	assert.Equal(t, context.Canceled, classify(context.Canceled, "prod"))
	assert.Equal(t, context.DeadlineExceeded, classify(context.DeadlineExceeded, "prod"))
}

package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ecswatch/internal/core/domain"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want string
	}{
		{
			name: "task arn",
			arn:  "arn:aws:ecs:eu-central-1:123456789012:task/prod/0f3a9282ca8448fb",
			want: "0f3a9282ca8448fb",
		},
		{
			name: "task definition arn",
			arn:  "arn:aws:ecs:eu-central-1:123456789012:task-definition/web:42",
			want: "web:42",
		},
		{
			name: "already short",
			arn:  "0f3a9282ca8448fb",
			want: "0f3a9282ca8448fb",
		},
		{
			name: "empty",
			arn:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ShortID(tt.arn))
		})
	}
}

func TestShortImage(t *testing.T) {
	tests := []struct {
		name  string
		image string
		want  string
	}{
		{
			name:  "private registry",
			image: "123456789012.dkr.ecr.eu-central-1.amazonaws.com/app/web:1.4.0",
			want:  "app/web:1.4.0",
		},
		{
			name:  "docker hub with org",
			image: "envoyproxy/envoy:v1.29.0",
			want:  "envoy:v1.29.0",
		},
		{
			name:  "bare image",
			image: "redis:7",
			want:  "redis:7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ShortImage(tt.image))
		})
	}
}

func TestNewestTime(t *testing.T) {
	fallback := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	early := fallback.Add(-2 * time.Hour)
	late := fallback.Add(-time.Minute)

	assert.Equal(t, late, domain.NewestTime(fallback, early, late, time.Time{}))
	assert.Equal(t, late, domain.NewestTime(fallback, late, early))
	assert.Equal(t, fallback, domain.NewestTime(fallback), "no candidates falls back")
	assert.Equal(t, fallback, domain.NewestTime(fallback, time.Time{}, time.Time{}))
}

func TestTaskBatchPartial(t *testing.T) {
	complete := &domain.TaskBatch{Records: []domain.TaskRecord{{TaskID: "task-a"}}}
	partial := &domain.TaskBatch{Failures: []string{"task-b"}}

	assert.False(t, complete.Partial())
	assert.True(t, partial.Partial())
}

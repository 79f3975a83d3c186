package render_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecswatch/internal/adapters/render"
	"go.trai.ch/ecswatch/internal/core/domain"
)

var polledAt = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func asciiProfile() termenv.Profile { return termenv.Ascii }

func newAsciiRenderer(buf *bytes.Buffer) *render.Renderer {
	return render.NewRendererWithProfile(buf, asciiProfile)
}

func TestRenderSummary_Table(t *testing.T) {
	records := []domain.TaskRecord{
		{
			TaskID:            "0f3a9282ca8448fb",
			DefinitionVersion: "web:42",
			DesiredStatus:     "RUNNING",
			LastStatus:        "PENDING",
			StartedAt:         time.Date(2026, 1, 2, 14, 30, 0, 0, time.UTC),
			Images:            []string{"app/web:1.4.0", "envoy:v1.29.0"},
			Health:            "UNKNOWN",
		},
		{
			TaskID:            "b61f3e08d2a14c55",
			DefinitionVersion: "web:41",
			DesiredStatus:     "RUNNING",
			LastStatus:        "RUNNING",
			StartedAt:         time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
			Images:            []string{"app/web:1.3.9"},
			Health:            "HEALTHY",
		},
	}
	summary := domain.Summarize(polledAt, records)

	var buf bytes.Buffer
	require.NoError(t, newAsciiRenderer(&buf).RenderSummary(summary))

	g := goldie.New(t)
	g.Assert(t, "summary_table", buf.Bytes())
}

func TestRenderSummary_EmptyCluster(t *testing.T) {
	summary := domain.Summarize(polledAt, nil)

	var buf bytes.Buffer
	require.NoError(t, newAsciiRenderer(&buf).RenderSummary(summary))

	assert.Equal(t, "2026-01-02 15:04:05\n(no tasks)\n", buf.String())
}

func TestRenderSummary_HealthSuffix(t *testing.T) {
	healthy := domain.Summarize(polledAt, []domain.TaskRecord{{
		TaskID:     "task-a",
		LastStatus: "RUNNING",
		StartedAt:  polledAt,
		Health:     "HEALTHY",
	}})
	unknown := domain.Summarize(polledAt, []domain.TaskRecord{{
		TaskID:     "task-a",
		LastStatus: "RUNNING",
		StartedAt:  polledAt,
	}})

	var buf bytes.Buffer
	require.NoError(t, newAsciiRenderer(&buf).RenderSummary(healthy))
	assert.Contains(t, buf.String(), "(healthy)")

	buf.Reset()
	require.NoError(t, newAsciiRenderer(&buf).RenderSummary(unknown))
	assert.NotContains(t, buf.String(), "(")
}

func TestRenderDetail_YAMLStream(t *testing.T) {
	var buf bytes.Buffer
	r := newAsciiRenderer(&buf)

	require.NoError(t, r.RenderDetail(map[string]string{"cluster": "prod"}))
	require.NoError(t, r.RenderDetail(map[string]string{"cluster": "prod"}))

	assert.Equal(t, "---\ncluster: prod\n---\ncluster: prod\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRender_WriteFailure(t *testing.T) {
	r := render.NewRendererWithProfile(failingWriter{}, asciiProfile)

	err := r.RenderSummary(domain.Summarize(polledAt, nil))
	assert.Error(t, err)

	err = r.RenderDetail(map[string]string{"cluster": "prod"})
	assert.Error(t, err)
}

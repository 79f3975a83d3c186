package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecswatch/internal/adapters/config"
	"go.trai.ch/ecswatch/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ecswatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_ReadsSettings(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
cluster: prod
region: eu-central-1
profile: deploy
interval: 5
detail: true
`)

	settings, err := config.NewLoaderWithPaths(path).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		Cluster:         "prod",
		Region:          "eu-central-1",
		Profile:         "deploy",
		IntervalSeconds: 5,
		Detail:          true,
	}, settings)
}

func TestLoader_NoFileIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ecswatch.yaml")

	settings, err := config.NewLoaderWithPaths(missing).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestLoader_FirstPathWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), "cluster: local\n")
	second := writeConfig(t, t.TempDir(), "cluster: global\n")

	settings, err := config.NewLoaderWithPaths(first, second).Load()

	require.NoError(t, err)
	assert.Equal(t, "local", settings.Cluster)
}

func TestLoader_SkipsMissingPaths(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ecswatch.yaml")
	present := writeConfig(t, t.TempDir(), "cluster: fallback\n")

	settings, err := config.NewLoaderWithPaths(missing, present).Load()

	require.NoError(t, err)
	assert.Equal(t, "fallback", settings.Cluster)
}

func TestLoader_ParseError(t *testing.T) {
	broken := writeConfig(t, t.TempDir(), "cluster: [unterminated\n")

	_, err := config.NewLoaderWithPaths(broken).Load()

	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_PartialFileLeavesRestEmpty(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "region: us-east-1\n")

	settings, err := config.NewLoaderWithPaths(path).Load()

	require.NoError(t, err)
	assert.Empty(t, settings.Cluster)
	assert.Equal(t, "us-east-1", settings.Region)
	assert.Zero(t, settings.IntervalSeconds)
}

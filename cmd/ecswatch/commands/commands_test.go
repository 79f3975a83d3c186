package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecswatch/cmd/ecswatch/commands"
	"go.trai.ch/ecswatch/internal/app"
)

// mockApp captures the options the CLI hands to the application layer.
type mockApp struct {
	opts   app.WatchOptions
	called bool
	err    error
}

func (m *mockApp) Watch(_ context.Context, opts app.WatchOptions) error {
	m.called = true
	m.opts = opts
	return m.err
}

func execute(t *testing.T, a *mockApp, args ...string) (string, string, error) {
	t.Helper()

	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetArgs(args)
	cli.SetOutput(&out, &errOut)

	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand_DefaultsToWatch(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a)

	require.NoError(t, err)
	assert.True(t, a.called)
	assert.Equal(t, app.WatchOptions{}, a.opts)
}

func TestRootCommand_LongFlags(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a,
		"--cluster", "prod",
		"--region", "eu-central-1",
		"--profile", "deploy",
		"--interval", "5",
		"--one-shot",
		"--detail",
		"--log-json",
	)

	require.NoError(t, err)
	assert.Equal(t, app.WatchOptions{
		Cluster:         "prod",
		Region:          "eu-central-1",
		Profile:         "deploy",
		IntervalSeconds: 5,
		OneShot:         true,
		Detail:          true,
		LogJSON:         true,
	}, a.opts)
}

func TestRootCommand_ShortFlags(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a, "-c", "prod", "-r", "eu-central-1", "-p", "deploy", "-i", "10", "-o", "-d")

	require.NoError(t, err)
	assert.Equal(t, app.WatchOptions{
		Cluster:         "prod",
		Region:          "eu-central-1",
		Profile:         "deploy",
		IntervalSeconds: 10,
		OneShot:         true,
		Detail:          true,
	}, a.opts)
}

func TestRootCommand_PropagatesWatchError(t *testing.T) {
	a := &mockApp{err: errors.New("watch failed")}

	_, _, err := execute(t, a)

	assert.EqualError(t, err, "watch failed")
}

func TestVersionCommand(t *testing.T) {
	a := &mockApp{}

	out, _, err := execute(t, a, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "ecswatch version")
	assert.Contains(t, out, "commit:")
	assert.False(t, a.called, "version must not start the watch loop")
}

func TestVersionFlag(t *testing.T) {
	a := &mockApp{}

	out, _, err := execute(t, a, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "ecswatch version")
	assert.False(t, a.called)
}

func TestHelpDoesNotWatch(t *testing.T) {
	a := &mockApp{}

	out, _, err := execute(t, a, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Watch an ECS cluster")
	assert.False(t, a.called)
}

func TestUnknownFlag(t *testing.T) {
	a := &mockApp{}

	_, _, err := execute(t, a, "--frequency", "1")

	assert.Error(t, err)
	assert.False(t, a.called)
}

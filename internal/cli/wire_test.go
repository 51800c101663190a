package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/tuxdock/internal/config"
	"github.com/RevCBH/tuxdock/internal/container"
)

// newTestApp returns an App with scripted stdin and captured output.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	app := New()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app.stdin = strings.NewReader(input)
	app.stdout = stdout
	app.stderr = stderr
	app.rootCmd.SetOut(stdout)
	app.rootCmd.SetErr(stderr)
	return app, stdout, stderr
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.configPath = writeConfig(t, "runtime: docker\nshell: /bin/sh\n")
	app.runtime = "podman"
	app.shell = "/bin/bash"
	app.verbose = true

	cfg, err := app.loadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.RuntimePodman, cfg.Runtime)
	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidRuntimeFlag(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.configPath = writeConfig(t, "")
	app.runtime = "containerd"

	_, err := app.loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.runtime")
}

func TestResolveRuntime(t *testing.T) {
	detectCalled := false
	detect := func() (string, error) {
		detectCalled = true
		return "podman", nil
	}

	got, err := resolveRuntime(config.RuntimeDocker, detect)
	require.NoError(t, err)
	assert.Equal(t, "docker", got)
	assert.False(t, detectCalled)

	got, err = resolveRuntime(config.RuntimeAuto, detect)
	require.NoError(t, err)
	assert.Equal(t, "podman", got)
	assert.True(t, detectCalled)
}

func TestResolveRuntime_DetectFailure(t *testing.T) {
	_, err := resolveRuntime(config.RuntimeAuto, func() (string, error) {
		return "", container.ErrNoRuntime
	})
	assert.True(t, errors.Is(err, container.ErrNoRuntime))
}

func TestNewLogger_Level(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := newLogger(buf, "debug")
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	_, err = newLogger(buf, "chatty")
	assert.Error(t, err)
}

func TestRootCmd_RunsMenuUntilExit(t *testing.T) {
	app, stdout, _ := newTestApp(t, "13\n")
	app.rootCmd.SetArgs([]string{"--config", writeConfig(t, "runtime: docker\n")})

	require.NoError(t, app.Execute())

	assert.Contains(t, stdout.String(), "Tux-Dock: Container Management Menu")
	assert.Contains(t, stdout.String(), "Exiting Tux-Dock.")
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	app, _, stderr := newTestApp(t, "13\n")
	app.rootCmd.SetArgs([]string{"--config", writeConfig(t, ""), "-v"})

	require.NoError(t, app.Execute())

	assert.Contains(t, stderr.String(), "starting menu")
	assert.Contains(t, stderr.String(), "runtime=docker")
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	app, _, _ := newTestApp(t, "13\n")
	app.rootCmd.SetArgs([]string{"--config", writeConfig(t, "shell: ''\n")})

	err := app.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.shell")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.rootCmd.SetArgs([]string{"pull"})

	assert.Error(t, app.Execute())
}

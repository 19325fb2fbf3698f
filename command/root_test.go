package command

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tminor/procls/config"
	"github.com/tminor/procls/implementation"
)

func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	command := newRootCommand()
	require.NoError(t, command.ParseFlags(args))
	return resolveConfig(command)
}

func TestResolveConfigDefaults(t *testing.T) {
	config_, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), config_)
}

func TestResolveConfigFlags(t *testing.T) {
	config_, err := parse(t, "--protocol", "tcp", "--address", ":7000", "-vv")
	require.NoError(t, err)
	assert.Equal(t, config.ProtocolTCP, config_.Protocol)
	assert.Equal(t, ":7000", config_.Address)
	assert.Equal(t, 2, config_.Verbose)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procls.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("protocol: websocket\naddress: :5000\nverbose: 1\n"), 0644))

	config_, err := parse(t, "--config", path, "--address", ":6000")
	require.NoError(t, err)
	assert.Equal(t, config.ProtocolWebSocket, config_.Protocol)
	assert.Equal(t, ":6000", config_.Address)
	assert.Equal(t, 1, config_.Verbose)
}

func TestResolveConfigInvalidProtocol(t *testing.T) {
	_, err := parse(t, "--protocol", "pipe")
	assert.Error(t, err)
}

func TestResolveConfigProtocolFlagOnly(t *testing.T) {
	config_, err := parse(t, "--protocol", "websocket")
	require.NoError(t, err)
	assert.Equal(t, config.ProtocolWebSocket, config_.Protocol)
	assert.Equal(t, ":4389", config_.Address)
}

func TestApplyServerInfo(t *testing.T) {
	name, version := implementation.ServerName, implementation.ServerVersion
	t.Cleanup(func() {
		implementation.ServerName, implementation.ServerVersion = name, version
	})

	config_ := config.Default()
	applyServerInfo(config_)
	assert.Equal(t, "procls", implementation.ServerName)
	assert.Equal(t, version, implementation.ServerVersion)

	config_.ServerName = "proc-server"
	config_.ServerVersion = "3.1.0"
	applyServerInfo(config_)
	assert.Equal(t, "proc-server", implementation.ServerName)
	assert.Equal(t, "3.1.0", implementation.ServerVersion)
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, logging.WARNING, verbosityLevel(0))
	assert.Equal(t, logging.INFO, verbosityLevel(1))
	assert.Equal(t, logging.DEBUG, verbosityLevel(2))
	assert.Equal(t, logging.DEBUG, verbosityLevel(5))
}

func TestConfigureLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procls.log")
	require.NoError(t, configureLogging(1, path))
	t.Cleanup(func() {
		require.NoError(t, configureLogging(0, ""))
	})

	log.Info("hello from test")

	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello from test")
	assert.Contains(t, string(content), "[command]")
}

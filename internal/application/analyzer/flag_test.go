package analyzer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/es-debug/nginx-log-analyzer/internal/application/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := analyzer.Start(context.Background(), args, &stdout, &stderr, "test")

	return stdout.String(), stderr.String(), err
}

func TestStartVersion(t *testing.T) {
	isolateHome(t)

	stdout, _, err := start(t, "--version")
	require.NoError(t, err)

	assert.Equal(t, "nginxstat version test\n", stdout)
}

func TestStartHelp(t *testing.T) {
	isolateHome(t)

	stdout, stderr, err := start(t, "--help")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: nginxstat [options] <log_file>")
	assert.Contains(t, stderr, "--top-ips")
}

func TestStartFlagErrors(t *testing.T) {
	tt := []struct {
		name string
		args []string
	}{
		{
			name: "unknown flag",
			args: []string{"--nope", "access.log"},
		},
		{
			name: "non numeric limit",
			args: []string{"--top-ips", "many", "access.log"},
		},
		{
			name: "zero limit",
			args: []string{"--top-ips", "0", "access.log"},
		},
		{
			name: "negative limit",
			args: []string{"--top-paths=-3", "access.log"},
		},
		{
			name: "bad log level",
			args: []string{"--log-level", "loud", "access.log"},
		},
		{
			name: "two files",
			args: []string{"a.log", "b.log"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			isolateHome(t)

			stdout, _, err := start(t, tc.args...)

			var flagErr analyzer.ErrFlag
			require.True(t, errors.As(err, &flagErr), "got %v", err)
			assert.Empty(t, stdout)
		})
	}
}

func TestStartEmptyPath(t *testing.T) {
	isolateHome(t)

	_, _, err := start(t)
	require.ErrorIs(t, err, analyzer.ErrEmptyLogPath{})
}

func TestStartLimitsFromFlags(t *testing.T) {
	isolateHome(t)

	fileName := createTestFile(t,
		logLine("10.0.0.1", ts, "GET", "/a", "200", "1"),
		logLine("10.0.0.2", ts, "GET", "/b", "200", "1"),
		logLine("10.0.0.3", ts, "GET", "/c", "200", "1"),
	)

	stdout, _, err := start(t, "--no-color", "--top-ips", "1", "--top-paths=2", fileName)
	require.NoError(t, err)

	assert.Contains(t, stdout, "TOP 1 IP ADDRESSES")
	assert.Contains(t, stdout, "TOP 2 REQUESTED PATHS")
	assert.Contains(t, stdout, "1. 10.0.0.1")
	assert.NotContains(t, stdout, "2. 10.0.0.2")
	assert.Contains(t, stdout, "2. /b")
	assert.NotContains(t, stdout, "3. /c")
}

func TestStartLimitsFromEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("NGINXSTAT_TOP_IPS", "1")

	fileName := createTestFile(t,
		logLine("10.0.0.1", ts, "GET", "/a", "200", "1"),
		logLine("10.0.0.2", ts, "GET", "/b", "200", "1"),
	)

	stdout, _, err := start(t, "--no-color", fileName)
	require.NoError(t, err)

	assert.Contains(t, stdout, "TOP 1 IP ADDRESSES")
	assert.Contains(t, stdout, "TOP 10 REQUESTED PATHS")
}

func TestStartInvalidEnvValue(t *testing.T) {
	isolateHome(t)
	t.Setenv("NGINXSTAT_TOP_IPS", "abc")

	fileName := createTestFile(t, logLine("10.0.0.1", ts, "GET", "/a", "200", "1"))

	stdout, _, err := start(t, "--no-color", fileName)

	var flagErr analyzer.ErrFlag
	require.True(t, errors.As(err, &flagErr), "got %v", err)
	assert.Empty(t, stdout)
}

func TestStartFlagOverridesEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("NGINXSTAT_TOP_IPS", "1")

	fileName := createTestFile(t, logLine("10.0.0.1", ts, "GET", "/a", "200", "1"))

	stdout, _, err := start(t, "--no-color", "--top-ips", "4", fileName)
	require.NoError(t, err)

	assert.Contains(t, stdout, "TOP 4 IP ADDRESSES")
}

func TestStartConfigFile(t *testing.T) {
	isolateHome(t)

	configFile := createConfigFile(t, "top-ips: 3\ntop-paths: 5\nno-color: true\n")
	fileName := createTestFile(t, logLine("10.0.0.1", ts, "GET", "/a", "200", "1"))

	stdout, _, err := start(t, "--config", configFile, fileName)
	require.NoError(t, err)

	assert.Contains(t, stdout, "TOP 3 IP ADDRESSES")
	assert.Contains(t, stdout, "TOP 5 REQUESTED PATHS")
	assert.NotContains(t, stdout, "\x1b")
}

func TestStartMissingConfigFile(t *testing.T) {
	isolateHome(t)

	fileName := createTestFile(t, logLine("10.0.0.1", ts, "GET", "/a", "200", "1"))

	_, _, err := start(t, "--config", "/definitely/not/here.yml", fileName)
	require.Error(t, err)
}

func TestStartMissingLogFile(t *testing.T) {
	isolateHome(t)

	stdout, _, err := start(t, "--no-color", "/definitely/not/here.log")

	var unavailable analyzer.ErrSourceUnavailable
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "log file '/definitely/not/here.log' not found", err.Error())
	assert.Contains(t, stdout, "L O G   A N A L Y Z E R")
}

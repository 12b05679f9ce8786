package analyzer_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, lines ...string) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), fmt.Sprintf("access_%d.log", time.Now().UnixNano()))

	f, err := os.Create(fileName)
	require.NoError(t, err, "file must be created")

	fmt.Fprint(f, strings.Join(lines, "\n"))

	err = f.Close()
	require.NoError(t, err, "file must be closed")

	return fileName
}

func createConfigFile(t *testing.T, content string) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600), "config must be written")

	return fileName
}

// isolateHome keeps a developer's own config file out of the tests.
func isolateHome(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func logLine(addr, ts, method, path, status, size string) string {
	return fmt.Sprintf(`%s - - [%s] "%s %s HTTP/1.1" %s %s "-" "curl/7.68.0"`, addr, ts, method, path, status, size)
}

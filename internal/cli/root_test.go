package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/wildlog/internal/cli/config"
	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"serve", "list", "search", "config", "version", "completion"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootCmd_ListAgainstSQLite(t *testing.T) {
	t.Chdir(t.TempDir())
	db := filepath.Join(t.TempDir(), "sightings.db")

	out, _, err := run(t, "--store-type", "sqlite", "--dsn", db, "--init-schema", "-o", "json", "list")
	require.NoError(t, err)

	var got []*core.Sighting
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got)
}

func TestRootCmd_SearchNoMatches(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "--store-type", "sqlite", "--dsn", ":memory:", "--init-schema", "search", "fox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sightings found")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "--store-type", "mysql", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown adapter type")

	_, _, err = run(t, "--log-level", "loud", "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestRootCmd_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WILDLOG_STORE__TYPE", "sqlite")
	t.Setenv("WILDLOG_SERVER__ADDR", ":9999")

	out, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "type: sqlite")
	assert.Contains(t, out, ":9999")
}

func TestRootCmd_Completion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wildlog")

	_, _, err = run(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatJSON

	logger, err := newLogger(buf, cfg)
	require.NoError(t, err)
	logger.Info("hello", "species", "Fox")
	logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "Fox", line["species"])

	buf.Reset()
	cfg.LogFormat = config.LogFormatText
	cfg.Verbose = true
	logger, err = newLogger(buf, cfg)
	require.NoError(t, err)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestFormatError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		got := formatError(errors.New("unknown command"))
		assert.Equal(t, "Error: unknown command\n", got)
	})

	t.Run("storage error carries a hint", func(t *testing.T) {
		err := fmt.Errorf("listing: %w", &core.StorageError{Op: "select", Err: assert.AnError})
		got := formatError(err)
		assert.True(t, strings.HasPrefix(got, "Error: listing: "), got)
		assert.Contains(t, got, "Hint: check store.dsn")
	})
}

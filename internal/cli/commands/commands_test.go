package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/wildlog/internal/cli/config"
	"github.com/leapstack-labs/wildlog/internal/store"
	"github.com/leapstack-labs/wildlog/internal/testutil"
	"github.com/leapstack-labs/wildlog/pkg/adapter"
	"github.com/leapstack-labs/wildlog/pkg/adapters/sqlite"
	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// seedDatabase creates a SQLite file holding the given sightings.
func seedDatabase(t *testing.T, inputs ...core.SightingInput) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sightings.db")
	logger := testutil.NewTestLogger(t)

	adp := sqlite.New(logger)
	require.NoError(t, adp.Connect(context.Background(), adapter.Config{Type: "sqlite", Path: path}))
	defer func() { _ = adp.Close() }()

	st, err := store.New(adp.Handle(), adp.Dialect(), logger)
	require.NoError(t, err)
	require.NoError(t, st.InitSchema(context.Background()))

	for _, in := range inputs {
		_, err := st.Insert(context.Background(), in)
		require.NoError(t, err)
	}
	return path
}

func sqliteConfig(path, out string) *config.Config {
	cfg := config.Default()
	cfg.Store = config.StoreConfig{Type: "sqlite", Database: path, InitSchema: true}
	cfg.OutputFormat = out
	return cfg
}

func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	ctx := config.WithLogger(context.Background(), testutil.NewTestLogger(t))
	ctx = config.WithConfig(ctx, cfg)
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

var (
	fox = core.SightingInput{Species: "Fox", Location: "Meadow", Date: "2024-05-01", Time: "14:30"}
	owl = core.SightingInput{Species: "Owl", Location: "Barn", Date: "2024-01-02", Time: "03:04"}
)

func TestListCommand(t *testing.T) {
	path := seedDatabase(t, fox, owl)

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, NewListCommand(), sqliteConfig(path, "json"))
		require.NoError(t, err)

		var got []*core.Sighting
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, fox.WithID(got[0].ID), got[0])
		assert.Equal(t, owl.WithID(got[1].ID), got[1])
	})

	t.Run("text", func(t *testing.T) {
		out, _, err := execute(t, NewListCommand(), sqliteConfig(path, "text"))
		require.NoError(t, err)
		assert.Contains(t, out, "Meadow")
		assert.Contains(t, out, "(2 sightings)")
	})

	t.Run("empty store", func(t *testing.T) {
		out, _, err := execute(t, NewListCommand(), sqliteConfig(filepath.Join(t.TempDir(), "empty.db"), "json"))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", out)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, _, err := execute(t, NewListCommand(), sqliteConfig(path, "json"), "extra")
		require.Error(t, err)
	})
}

func TestSearchCommand(t *testing.T) {
	path := seedDatabase(t, fox, owl)

	tests := []struct {
		name      string
		args      []string
		wantID    bool
		errSubstr string
	}{
		{name: "case insensitive", args: []string{"fOX"}, wantID: true},
		{name: "no matches", args: []string{"Heron"}, errSubstr: `no sightings found for species "Heron"`},
		{name: "empty species", args: []string{""}, errSubstr: "Species name is required."},
		{name: "missing argument", args: nil, errSubstr: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewSearchCommand(), sqliteConfig(path, "json"), tt.args...)
			if tt.errSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)

			var got []*core.Sighting
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Len(t, got, 1)
			assert.Equal(t, "Fox", got[0].Species)
		})
	}
}

func TestCommandContext_UnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Type = "mysql"

	_, _, err := execute(t, NewListCommand(), cfg)
	require.Error(t, err)

	var unknown *adapter.UnknownAdapterError
	assert.ErrorAs(t, err, &unknown)
}

func TestConfigCommand(t *testing.T) {
	cfg := sqliteConfig("local.db", "auto")
	cfg.Store.Password = "s3cret"
	cfg.Store.DSN = "postgres://admin:hunter2@db:5432/wild"

	out, errOut, err := execute(t, NewConfigCommand(), cfg)
	require.NoError(t, err)

	assert.NotContains(t, out, "s3cret")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, errOut, "no config file found")

	var dumped config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &dumped))
	assert.Equal(t, "sqlite", dumped.Store.Type)
	assert.Equal(t, "local.db", dumped.Store.Database)
	assert.Equal(t, "********", dumped.Store.Password)
	assert.Equal(t, "postgres://admin:********@db:5432/wild", dumped.Store.DSN)
	assert.Equal(t, cfg.Server.ShutdownTimeout, dumped.Server.ShutdownTimeout)
	assert.True(t, strings.HasPrefix(out, "store:"))
}

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{name: "default version", version: "0.1.0", wantOut: []string{"wildlog v0.1.0", "sightings"}},
		{name: "custom version", version: "1.2.3", wantOut: []string{"wildlog v1.2.3"}},
		{name: "dev version", version: "dev", wantOut: []string{"wildlog vdev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewVersionCommand(tt.version), config.Default())
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestServeCommandMetadata(t *testing.T) {
	cmd := NewServeCommand()
	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

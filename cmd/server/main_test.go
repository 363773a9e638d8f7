package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no argument", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "status", args: []string{"status"}},
		{name: "unknown command", args: []string{"sideways"}, wantErr: true},
		{name: "too many arguments", args: []string{"up", "down"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newMigrateCmd(new(string))

			err := cmd.Args(cmd, tt.args)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServeRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"serve", "extra"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	assert.Error(t, root.Execute())
}

func TestCommandsFailOnInvalidConfig(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o600))

	for _, args := range [][]string{
		{"serve", "--config", path},
		{"migrate", "--config", path},
		{"seed", "--config", path},
	} {
		root := newRootCmd()
		root.SetArgs(args)

		err := root.Execute()

		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "failed to load configuration")
	}
}

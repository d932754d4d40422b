// SPDX-License-Identifier: MIT
package tazza

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewInvocation(t *testing.T) {
	source := writeSource(t, "main.tz", "x: int")
	wrongExt := writeSource(t, "main.txt", "x: int")
	dir := filepath.Join(t.TempDir(), "pkg.tz")
	require.NoError(t, os.Mkdir(dir, 0o700))

	tests := []struct {
		name        string
		opts        []InvocationOption
		wantExecute bool
		wantGetC    bool
		wantErr     error
	}{
		{
			name: "build",
			opts: []InvocationOption{WithCommand(CommandBuild), WithFilePath(source)},
		},
		{
			name:        "run with C output",
			opts:        []InvocationOption{WithCommand(CommandRun), WithFilePath(source), WithGetC(true)},
			wantExecute: true,
			wantGetC:    true,
		},
		{
			name:    "missing command",
			opts:    []InvocationOption{WithFilePath(source)},
			wantErr: ErrMissingCommand,
		},
		{
			name:    "unknown command",
			opts:    []InvocationOption{WithCommand("exec"), WithFilePath(source)},
			wantErr: ErrUnknownCommand,
		},
		{
			name:    "missing file",
			opts:    []InvocationOption{WithCommand(CommandBuild)},
			wantErr: ErrMissingFile,
		},
		{
			name:    "wrong extension",
			opts:    []InvocationOption{WithCommand(CommandBuild), WithFilePath(wrongExt)},
			wantErr: ErrInvalidExtension,
		},
		{
			name:    "non-existent file",
			opts:    []InvocationOption{WithCommand(CommandBuild), WithFilePath(filepath.Join(t.TempDir(), "nope.tz"))},
			wantErr: ErrFileNotFound,
		},
		{
			name:    "directory",
			opts:    []InvocationOption{WithCommand(CommandRun), WithFilePath(dir)},
			wantErr: ErrFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := NewInvocation(tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, inv)
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)

				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				assert.Contains(t, err.Error(), "[ERROR]: ")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, source, inv.FilePath())
			assert.Equal(t, tt.wantExecute, inv.Execute())
			assert.Equal(t, tt.wantGetC, inv.GetC())
		})
	}
}

func TestUsageError_Error(t *testing.T) {
	assert.Equal(t, "[ERROR]: missing command", (&UsageError{Err: ErrMissingCommand}).Error())
	assert.Equal(t, "[ERROR]: unknown command: exec", (&UsageError{Err: ErrUnknownCommand, Detail: "exec"}).Error())
}

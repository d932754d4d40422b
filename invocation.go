// SPDX-License-Identifier: MIT
package tazza

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	// Command names the driver operation requested on the command line.
	Command string

	// Invocation describes a single driver request; immutable once built.
	Invocation struct {
		command  Command
		filePath string
		getC     bool
	}

	// invocationBuilder accumulates options until NewInvocation validates them.
	invocationBuilder struct {
		command  Command
		filePath string
		getC     bool
	}

	// InvocationOption defines the Invocation functional option type.
	InvocationOption func(*invocationBuilder)

	// UsageError reports a malformed invocation.
	UsageError struct {
		Err    error
		Detail string
	}
)

// Supported commands.
const (
	CommandBuild Command = "build"
	CommandRun   Command = "run"
)

// Extension is the source file extension.
const Extension = ".tz"

// Usage errors.
var (
	ErrMissingCommand   = errors.New("missing command")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingFile      = errors.New("missing source file")
	ErrInvalidExtension = errors.New("invalid source file extension")
	ErrFileNotFound     = errors.New("source file not found")
)

// Error is the error interface implementation for UsageError.
func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("[ERROR]: %v", e.Err)
	}

	return fmt.Sprintf("[ERROR]: %v: %s", e.Err, e.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *UsageError) Unwrap() error { return e.Err }

// WithCommand configures the command option.
func WithCommand(c Command) InvocationOption {
	return func(b *invocationBuilder) { b.command = c }
}

// WithFilePath configures the source file option.
func WithFilePath(path string) InvocationOption {
	return func(b *invocationBuilder) { b.filePath = path }
}

// WithGetC configures the C output option.
func WithGetC(getC bool) InvocationOption {
	return func(b *invocationBuilder) { b.getC = getC }
}

// NewInvocation validates the options & instantiates an Invocation.
//
// Returns a *UsageError for a missing or unknown command, or a missing, non-existent or
// wrongly named source file.
func NewInvocation(opts ...InvocationOption) (inv *Invocation, err error) {
	b := &invocationBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	switch b.command {
	case "":
		return nil, &UsageError{Err: ErrMissingCommand}
	case CommandBuild, CommandRun:
	default:
		return nil, &UsageError{Err: ErrUnknownCommand, Detail: string(b.command)}
	}

	if err = CheckSourcePath(b.filePath); err != nil {
		return nil, err
	}

	inv = &Invocation{
		command:  b.command,
		filePath: b.filePath,
		getC:     b.getC,
	}

	return
}

// CheckSourcePath verifies that path names an existing source file.
func CheckSourcePath(path string) error {
	if path == "" {
		return &UsageError{Err: ErrMissingFile}
	}

	if filepath.Ext(path) != Extension {
		return &UsageError{Err: ErrInvalidExtension, Detail: fmt.Sprintf("%s, want %s", path, Extension)}
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &UsageError{Err: ErrFileNotFound, Detail: path}
	}

	return nil
}

// Command retrieves the requested command.
func (i *Invocation) Command() Command { return i.command }

// FilePath retrieves the source file path.
func (i *Invocation) FilePath() string { return i.filePath }

// Execute reports whether the scanned program should be run.
func (i *Invocation) Execute() bool { return i.command == CommandRun }

// GetC reports whether C output was requested.
func (i *Invocation) GetC() bool { return i.getC }

// Package gitcmd contains helpers for testing git command interactions.
// The _test suffix ensures this file is only included during tests.
package gitcmd

import (
	"context"
	"errors"
	"io"
	"testing"
)

// mockStreamer records streamed git invocations.
type mockStreamer struct {
	calls  [][]string
	stdout string // written to the stdout writer on each call
	stderr string // written to the stderr writer on each call
	err    error
}

func (m *mockStreamer) run(_ context.Context, stdout, stderr io.Writer, args ...string) error {
	m.calls = append(m.calls, args)
	if m.stdout != "" {
		_, _ = io.WriteString(stdout, m.stdout)
	}
	if m.stderr != "" {
		_, _ = io.WriteString(stderr, m.stderr)
	}
	return m.err
}

// setupMockStreamer sets the package Streamer to the mock and returns a teardown function.
func setupMockStreamer(_ *testing.T, mock *mockStreamer) func() {
	originalStreamer := Streamer
	Streamer = mock.run
	return func() {
		Streamer = originalStreamer
	}
}

// errExit stands in for the *exec.ExitError of a failed git process.
var errExit = errors.New("exit status 1")

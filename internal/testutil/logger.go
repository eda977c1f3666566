// SPDX-License-Identifier: MIT

// Package testutil holds helpers for numlin's CLI tests: an slog logger that
// writes to t.Log and a context carrying it the way the root command does.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/numlin/internal/config"
)

// NewTestLogger returns a debug-level logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Context returns a background context whose config.GetLogger resolves to
// NewTestLogger(t), for running a subcommand without the root pre-run.
func Context(t testing.TB) context.Context {
	t.Helper()

	return config.WithLogger(context.Background(), NewTestLogger(t))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))

	return len(p), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the occupa-lo-studente binaries.
//
// Every entry carries the binary role, a timestamp and the calling function.
// Request handling code never keeps its own logger: it reads the
// request-scoped one with [FromContext] or [FromRequest], which carries the
// trace id and, once authenticated, the actor.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

var setupOnce sync.Once

// setup configures the zerolog globals shared by every logger. The caller
// field holds the function name rather than file:line.
func setup() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New returns a JSON logger writing to out.
func New(role string, out io.Writer) *Logger {
	setup()

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel changes the global level. An empty level is ignored.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger with key=value added to the fields of l. l is left
// untouched.
func (l *Logger) Child(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithActor returns a copy of ctx whose logger tags every entry with the
// authenticated actor.
func WithActor(ctx context.Context, kind, id string) context.Context {
	l := FromContext(ctx).With().
		Str("actor_kind", kind).
		Str("actor_id", id).
		Logger()

	return l.WithContext(ctx)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report is the central error-severity reporting facility.
//
// Components that hit a failure they can recover from call [Report] with a
// [Code] and a [Level] and keep running. What happens next is decided by
// the installed [Handler]: the default one logs through log/slog and only
// panics for [Fatal]. Tests swap the handler with [SetHandler].
//
// The queue core in package vq never reports: overflow and emptiness are
// results, not errors.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Level is the severity of a reported error.
type Level uint8

const (
	// Fatal errors leave the component unusable. The default handler panics.
	Fatal Level = iota
	// Severe errors break an operation but the component keeps running.
	Severe
	// Moderate errors are recovered from locally, e.g. a dropped message.
	Moderate
)

func (l Level) String() string {
	switch l {
	case Fatal:
		return "FATAL"
	case Severe:
		return "SEVERE"
	case Moderate:
		return "MODERATE"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// slogLevel maps l onto the level the default handler logs at.
func (l Level) slogLevel() slog.Level {
	if l == Moderate {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// Code identifies where an error was reported from.
type Code string

const (
	// ProcessSendViaIPCChannelFailed is reported when a message could not be
	// sent to a peer process.
	ProcessSendViaIPCChannelFailed Code = "process.send_via_ipc_channel_failed"
	// ProcessOutboxOverflow is reported when a queued message was dropped
	// or rejected before it could be sent.
	ProcessOutboxOverflow Code = "process.outbox_overflow"
)

// Handler receives every reported error.
type Handler func(code Code, err error, level Level)

// FatalError is the panic value of the default handler for Fatal reports.
type FatalError struct {
	Code Code
	Err  error
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return "report: fatal " + string(e.Code)
	}
	return "report: fatal " + string(e.Code) + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

var (
	mu      sync.RWMutex
	handler Handler = DefaultHandler
)

// DefaultHandler logs the error through slog.Default.
// Moderate is logged at warn level, Severe and Fatal at error level.
// Fatal then panics with a *FatalError.
func DefaultHandler(code Code, err error, level Level) {
	attrs := []slog.Attr{
		slog.String("code", string(code)),
		slog.String("level", level.String()),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.Default().LogAttrs(context.Background(), level.slogLevel(), "error reported", attrs...)

	if level == Fatal {
		panic(&FatalError{Code: code, Err: err})
	}
}

// Report passes the error to the installed handler.
func Report(code Code, err error, level Level) {
	mu.RLock()
	h := handler
	mu.RUnlock()
	h(code, err, level)
}

// SetHandler installs h and returns a function restoring the previous one.
// A nil h installs DefaultHandler.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = DefaultHandler
	}

	mu.Lock()
	prev := handler
	handler = h
	mu.Unlock()

	return func() {
		mu.Lock()
		handler = prev
		mu.Unlock()
	}
}

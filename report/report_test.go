// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/vq/report"
)

type reported struct {
	code  report.Code
	err   error
	level report.Level
}

func TestSetHandlerRestores(t *testing.T) {
	var got []reported
	restore := report.SetHandler(func(code report.Code, err error, level report.Level) {
		got = append(got, reported{code, err, level})
	})

	errSend := errors.New("send failed")
	report.Report(report.ProcessSendViaIPCChannelFailed, errSend, report.Moderate)
	restore()

	require.Len(t, got, 1)
	require.Equal(t, report.ProcessSendViaIPCChannelFailed, got[0].code)
	require.ErrorIs(t, got[0].err, errSend)
	require.Equal(t, report.Moderate, got[0].level)

	// Restored handler no longer records
	withDefaultLogger(t, &bytes.Buffer{})
	report.Report(report.ProcessOutboxOverflow, nil, report.Moderate)
	require.Len(t, got, 1)
}

func TestDefaultHandlerLogs(t *testing.T) {
	var buf bytes.Buffer
	withDefaultLogger(t, &buf)

	report.DefaultHandler(report.ProcessOutboxOverflow, errors.New("dropped"), report.Moderate)

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "code=process.outbox_overflow")
	require.Contains(t, out, "level=MODERATE")
	require.Contains(t, out, "error=dropped")
}

func TestDefaultHandlerSevereDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	withDefaultLogger(t, &buf)

	require.NotPanics(t, func() {
		report.DefaultHandler(report.ProcessSendViaIPCChannelFailed, nil, report.Severe)
	})
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestDefaultHandlerFatalPanics(t *testing.T) {
	withDefaultLogger(t, &bytes.Buffer{})

	errBoom := errors.New("boom")
	defer func() {
		r := recover()
		require.NotNil(t, r)
		fe, ok := r.(*report.FatalError)
		require.True(t, ok, "panic value %T", r)
		require.Equal(t, report.ProcessSendViaIPCChannelFailed, fe.Code)
		require.ErrorIs(t, fe, errBoom)
	}()
	report.DefaultHandler(report.ProcessSendViaIPCChannelFailed, errBoom, report.Fatal)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "FATAL", report.Fatal.String())
	require.Equal(t, "SEVERE", report.Severe.String())
	require.Equal(t, "MODERATE", report.Moderate.String())
	require.Equal(t, "Level(9)", report.Level(9).String())
}

func withDefaultLogger(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package process keeps the record of a peer process registered with the
// middleware daemon and hands messages to it.
//
// A Process owns the IPC channel to its peer and an outbox built on
// [vq.Queue]: any goroutine may Post, one goroutine Flushes the outbox into
// the channel. Send failures and dropped messages are reported through
// package report at Moderate level and never stop the caller.
//
// The channel's wire format, shared-memory framing and liveness timeouts
// are not handled here.
package process

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/vq"
	"code.hybscloud.com/vq/report"
)

// Message is one IPC message: an ordered list of entries. Encoding it is
// the channel's business.
type Message []string

// Channel sends messages to the peer process.
type Channel interface {
	// Send delivers msg and reports whether it was accepted.
	Send(msg Message) bool
}

// MemoryManager is the allocator serving the peer's payload data segment.
type MemoryManager interface {
	// RequiredMemorySize returns the bytes the segment needs.
	RequiredMemorySize() uint64
}

var (
	// ErrSendFailed wraps channel send failures passed to report.
	ErrSendFailed = errors.New("process: send via ipc channel failed")
	// ErrMessageDropped wraps outbox overflows passed to report.
	ErrMessageDropped = errors.New("process: outbox message dropped")
)

// Config describes a peer process.
type Config struct {
	Name          string
	PID           uint32
	MemoryManager MemoryManager
	Monitored     bool
	DataSegmentID uint64
	SessionID     uint64
	Channel       Channel
}

// Process is a registered peer process.
type Process struct {
	name          string
	pid           uint32
	mem           MemoryManager
	monitored     bool
	dataSegmentID uint64
	sessionID     atomix.Uint64
	timestamp     atomix.Int64 // Unix nanoseconds
	ch            Channel
	outbox        *vq.Queue[Message]
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a Process from cfg.
// Returns an error if cfg has no name or no channel.
func New(cfg Config, opts ...Option) (*Process, error) {
	if cfg.Name == "" {
		return nil, errors.New("process: empty name")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("process %q: nil channel", cfg.Name)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.outboxVariant.Valid() || o.outboxCapacity < 1 {
		return nil, fmt.Errorf("process %q: invalid outbox %s/%d", cfg.Name, o.outboxVariant, o.outboxCapacity)
	}

	p := &Process{
		name:          cfg.Name,
		pid:           cfg.PID,
		mem:           cfg.MemoryManager,
		monitored:     cfg.Monitored,
		dataSegmentID: cfg.DataSegmentID,
		ch:            cfg.Channel,
		outbox:        vq.New[Message](o.outboxVariant, o.outboxCapacity),
		logger:        o.logger.With(slog.String("process", cfg.Name), slog.Uint64("pid", uint64(cfg.PID))),
		now:           o.now,
	}
	p.sessionID.StoreRelaxed(cfg.SessionID)
	p.SetTimestamp(o.now())
	return p, nil
}

// Name returns the runtime name of the process.
func (p *Process) Name() string {
	return p.name
}

// PID returns the operating system process id.
func (p *Process) PID() uint32 {
	return p.pid
}

// MemoryManager returns the allocator of the payload data segment.
func (p *Process) MemoryManager() MemoryManager {
	return p.mem
}

// Monitored reports whether the process takes part in liveness monitoring.
func (p *Process) Monitored() bool {
	return p.monitored
}

// DataSegmentID returns the id of the payload data segment.
func (p *Process) DataSegmentID() uint64 {
	return p.dataSegmentID
}

// SessionID returns the session id.
// The load is relaxed: the id is an advisory generation check, not a
// synchronization point.
func (p *Process) SessionID() uint64 {
	return p.sessionID.LoadRelaxed()
}

// SetTimestamp records when the process was last heard from.
func (p *Process) SetTimestamp(ts time.Time) {
	p.timestamp.StoreRelaxed(ts.UnixNano())
}

// Timestamp returns when the process was last heard from.
func (p *Process) Timestamp() time.Time {
	return time.Unix(0, p.timestamp.LoadRelaxed())
}

// Touch sets the timestamp to the current time.
func (p *Process) Touch() {
	p.SetTimestamp(p.now())
}

// SendViaIPCChannel sends msg to the peer right away.
// A failed send is logged and reported at Moderate level; the caller keeps
// running either way.
func (p *Process) SendViaIPCChannel(msg Message) bool {
	if p.ch.Send(msg) {
		return true
	}

	p.logger.Warn("process cannot send message over communication channel")
	report.Report(report.ProcessSendViaIPCChannelFailed,
		fmt.Errorf("%w: %s", ErrSendFailed, p.name), report.Moderate)
	return false
}

// Post queues msg for the next Flush. Safe for concurrent use unless the
// outbox variant is single-producer.
//
// Returns false if a message was lost: either an older message was evicted
// to make room, or the outbox is closed and msg was rejected. Either case is
// logged and reported at Moderate level.
func (p *Process) Post(msg Message) bool {
	dropped, overflow := p.outbox.Push(msg)
	if !overflow {
		return true
	}

	p.logger.Warn("process outbox dropped a message", slog.Int("entries", len(dropped)))
	report.Report(report.ProcessOutboxOverflow,
		fmt.Errorf("%w: %s", ErrMessageDropped, p.name), report.Moderate)
	return false
}

// Flush sends every queued message in order and returns how many were
// accepted by the channel. Failed sends are reported and not retried.
// Only one goroutine may flush at a time.
func (p *Process) Flush() int {
	sent := 0
	for {
		msg, ok := p.outbox.Pop()
		if !ok {
			return sent
		}
		if p.SendViaIPCChannel(msg) {
			sent++
		}
	}
}

// Pending reports whether the outbox holds messages.
func (p *Process) Pending() bool {
	return !p.outbox.Empty()
}

// Close releases goroutines blocked in Post on a blocking outbox. Queued
// messages can still be flushed; later posts are rejected.
func (p *Process) Close() {
	p.outbox.Close()
}

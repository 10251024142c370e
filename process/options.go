// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package process

import (
	"log/slog"
	"time"

	"code.hybscloud.com/vq"
)

// DefaultOutboxCapacity is the outbox capacity when WithOutbox is not used.
const DefaultOutboxCapacity = 64

type options struct {
	outboxVariant  vq.Variant
	outboxCapacity int
	logger         *slog.Logger
	now            func() time.Time
}

func defaultOptions() options {
	return options{
		outboxVariant:  vq.VariantMPSC,
		outboxCapacity: DefaultOutboxCapacity,
		logger:         slog.Default(),
		now:            time.Now,
	}
}

// Option configures a Process.
type Option func(*options)

// WithOutbox selects the queue variant and capacity of the outbox.
// The default is an overflowing MPSC queue of DefaultOutboxCapacity.
func WithOutbox(variant vq.Variant, capacity int) Option {
	return func(o *options) {
		o.outboxVariant = variant
		o.outboxCapacity = capacity
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

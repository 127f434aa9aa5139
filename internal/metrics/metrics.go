// Package metrics reports request metrics to an OpenTelemetry collector.
package metrics

import (
	"context"
	"time"

	"github.com/Zachkp/folio/internal/config"
)

// Recorder receives one observation per served request.
type Recorder interface {
	RequestServed(ctx context.Context, route string, status int, duration time.Duration)
	Close(ctx context.Context) error
}

// New returns an OTLP exporter when cfg enables one and a no-op recorder
// otherwise.
func New(ctx context.Context, cfg config.OTel) (Recorder, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NewNoop(), nil
	}
	return NewExporter(ctx, cfg)
}

// Noop discards every observation.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) RequestServed(context.Context, string, int, time.Duration) {}

func (*Noop) Close(context.Context) error {
	return nil
}

package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// BarRefresher is the slice of the history service the poller drives.
type BarRefresher interface {
	RefreshBars(ctx context.Context) error
}

// BarPoller periodically refreshes the stored daily bars so the stale-data
// fallback stays close to the live feed. Daily bars barely move intraday, so
// the default interval is hours, not seconds.
type BarPoller struct {
	tracer       trace.Tracer
	history      BarRefresher
	pollInterval time.Duration
}

func NewBarPoller(tracer trace.Tracer, history BarRefresher, pollIntervalSecs int) *BarPoller {
	return &BarPoller{
		tracer:       tracer,
		history:      history,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start runs one refresh immediately, then one per interval. Blocks until
// ctx is cancelled.
func (p *BarPoller) Start(ctx context.Context) {
	log.Println("Bar poller starting...")

	if err := p.history.RefreshBars(ctx); err != nil {
		log.Printf("bar poller initial run error: %v", err)
	}

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Bar poller stopped")
			return
		case <-ticker.C:
			if err := p.history.RefreshBars(ctx); err != nil {
				log.Printf("bar poller error: %v", err)
			}
		}
	}
}

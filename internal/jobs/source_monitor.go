package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNotChecked is reported until the first check has completed.
var ErrNotChecked = errors.New("source not checked yet")

// Pinger reports whether the dataset's backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SourceMonitor checks the backing store in the background and keeps the
// last result, so readiness probes never wait on the database.
type SourceMonitor struct {
	source   Pinger
	interval time.Duration
	timeout  time.Duration
	report   func(up bool)
	log      *slog.Logger

	mu      sync.RWMutex
	lastErr error
}

// NewSourceMonitor creates a monitor that pings source every interval.
// report is called with the outcome of each check and may be nil.
func NewSourceMonitor(source Pinger, interval time.Duration, report func(up bool), log *slog.Logger) *SourceMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if report == nil {
		report = func(bool) {}
	}
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &SourceMonitor{
		source:   source,
		interval: interval,
		timeout:  timeout,
		report:   report,
		log:      log,
		lastErr:  ErrNotChecked,
	}
}

// Start runs the check loop until ctx is cancelled. It always returns nil
// so it can run inside an errgroup next to the server.
func (m *SourceMonitor) Start(ctx context.Context) error {
	m.log.Info("source monitor started", "interval", m.interval)

	// Run immediately on start
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("source monitor stopped")
			return nil
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// Ping returns the result of the most recent check.
func (m *SourceMonitor) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *SourceMonitor) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.source.Ping(checkCtx)
	if err != nil && ctx.Err() != nil {
		// Shutting down, keep the previous result
		return
	}

	m.mu.Lock()
	prev := m.lastErr
	m.lastErr = err
	m.mu.Unlock()

	m.report(err == nil)

	switch {
	case err != nil && prev == nil:
		m.log.Warn("source became unreachable", "error", err)
	case err == nil && prev != nil && !errors.Is(prev, ErrNotChecked):
		m.log.Info("source reachable again")
	}
}

package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakePinger) set(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSourceMonitor_NotCheckedBeforeStart(t *testing.T) {
	m := NewSourceMonitor(&fakePinger{}, time.Minute, nil, discard())

	if err := m.Ping(context.Background()); !errors.Is(err, ErrNotChecked) {
		t.Errorf("Ping() error = %v, want %v", err, ErrNotChecked)
	}
}

func TestSourceMonitor_Check(t *testing.T) {
	errDown := errors.New("connection refused")

	tests := []struct {
		name    string
		pingErr error
		wantUp  bool
	}{
		{"reachable", nil, true},
		{"unreachable", errDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reported []bool
			m := NewSourceMonitor(&fakePinger{err: tt.pingErr}, time.Minute, func(up bool) {
				reported = append(reported, up)
			}, discard())

			m.check(context.Background())

			if err := m.Ping(context.Background()); !errors.Is(err, tt.pingErr) {
				t.Errorf("Ping() error = %v, want %v", err, tt.pingErr)
			}
			if len(reported) != 1 || reported[0] != tt.wantUp {
				t.Errorf("reported = %v, want [%v]", reported, tt.wantUp)
			}
		})
	}
}

func TestSourceMonitor_Recovers(t *testing.T) {
	p := &fakePinger{err: errors.New("down")}
	m := NewSourceMonitor(p, time.Minute, nil, discard())

	m.check(context.Background())
	if m.Ping(context.Background()) == nil {
		t.Fatal("Ping() = nil, want error while source is down")
	}

	p.set(nil)
	m.check(context.Background())
	if err := m.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v, want nil after recovery", err)
	}
}

func TestSourceMonitor_StartStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewSourceMonitor(&fakePinger{}, 10*time.Millisecond, nil, discard())

	done := make(chan error, 1)
	go func() { done <- m.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for m.Ping(context.Background()) != nil {
		select {
		case <-deadline:
			t.Fatal("monitor did not complete a check")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

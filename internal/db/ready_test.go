package db

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type flakyPinger struct {
	failures int32
	calls    atomic.Int32
}

func (p *flakyPinger) Ping(context.Context) error {
	if p.calls.Add(1) <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestWaitForReady_Immediate(t *testing.T) {
	p := &flakyPinger{}
	if err := WaitForReady(context.Background(), p, time.Second); err != nil {
		t.Fatalf("WaitForReady: %v", err)
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("pings = %d, want 1", got)
	}
}

func TestWaitForReady_Retries(t *testing.T) {
	p := &flakyPinger{failures: 2}
	if err := WaitForReady(context.Background(), p, 2*time.Second); err != nil {
		t.Fatalf("WaitForReady: %v", err)
	}
	if got := p.calls.Load(); got != 3 {
		t.Errorf("pings = %d, want 3", got)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	p := &flakyPinger{failures: 1 << 30}
	err := WaitForReady(context.Background(), p, 250*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}
}

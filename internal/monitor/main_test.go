package monitor_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/malbeclabs/linkmon/internal/monitor"
)

type mockCounterSource struct {
	interfacesFunc func(ctx context.Context) ([]monitor.InterfaceInfo, error)
	countersFunc   func(ctx context.Context, name string) (monitor.InterfaceCounters, error)
}

func (m *mockCounterSource) Interfaces(ctx context.Context) ([]monitor.InterfaceInfo, error) {
	if m.interfacesFunc == nil {
		return []monitor.InterfaceInfo{
			{Name: "lo", Loopback: true},
			{Name: "eth0"},
		}, nil
	}
	return m.interfacesFunc(ctx)
}

func (m *mockCounterSource) Counters(ctx context.Context, name string) (monitor.InterfaceCounters, error) {
	if m.countersFunc == nil {
		return monitor.InterfaceCounters{}, nil
	}
	return m.countersFunc(ctx, name)
}

// counterSequence returns successive snapshots per read, repeating the last
// one once the sequence is exhausted.
func counterSequence(seq ...monitor.InterfaceCounters) func(ctx context.Context, name string) (monitor.InterfaceCounters, error) {
	var mu sync.Mutex
	i := 0
	return func(context.Context, string) (monitor.InterfaceCounters, error) {
		mu.Lock()
		defer mu.Unlock()
		c := seq[min(i, len(seq)-1)]
		i++
		return c, nil
	}
}

type mockProbe struct {
	probeFunc func(ctx context.Context, host string) (time.Duration, error)
}

func (m *mockProbe) Probe(ctx context.Context, host string) (time.Duration, error) {
	if m.probeFunc == nil {
		return 10 * time.Millisecond, nil
	}
	return m.probeFunc(ctx, host)
}

type mockReporter struct {
	mu      sync.Mutex
	headers []string
	samples []monitor.Sample
}

func (r *mockReporter) ReportHeader(iface, host string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = append(r.headers, fmt.Sprintf("%s|%s", iface, host))
}

func (r *mockReporter) ReportSample(s monitor.Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
}

func (r *mockReporter) Headers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.headers...)
}

func (r *mockReporter) Samples() []monitor.Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]monitor.Sample(nil), r.samples...)
}

func waitForStop(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for monitor to stop")
		return nil
	}
}

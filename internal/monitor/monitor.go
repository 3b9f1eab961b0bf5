package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/malbeclabs/linkmon/internal/metrics"
)

// Monitor drives the sampling loop: one probe and one counter read per
// tick, drift-corrected so the configured interval is the period between
// tick starts rather than the sleep duration. It owns the loss tracker and
// the previous counter snapshot; nothing else touches them.
type Monitor struct {
	log *slog.Logger
	cfg Config

	loss LossTracker
}

func New(log *slog.Logger, cfg Config) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Monitor{log: log, cfg: cfg}, nil
}

// Run resolves the interface, takes the initial counter snapshot, and then
// samples until the configured count is exhausted or ctx is cancelled.
// Probe failures are recorded as loss and the loop continues; a counter
// read failure is fatal, since throughput continuity cannot be guaranteed
// across a gap.
func (m *Monitor) Run(ctx context.Context) error {
	iface, err := m.resolveInterface(ctx)
	if err != nil {
		return err
	}

	// Never reported; only the "previous" snapshot for the first tick.
	prev, err := m.cfg.Counters.Counters(ctx, iface)
	if err != nil {
		return fmt.Errorf("failed to read initial counters for %s: %w", iface, err)
	}
	prevAt := m.cfg.Clock.Now()

	m.log.Info("Starting link monitor",
		"interface", iface,
		"host", m.cfg.Host,
		"interval", m.cfg.Interval,
		"probeTimeout", m.cfg.ProbeTimeout,
		"count", m.cfg.Count,
	)
	m.cfg.Reporter.ReportHeader(iface, m.cfg.Host)

	remaining := m.cfg.Count
	for {
		t0 := m.cfg.Clock.Now()

		rtt, lost := m.probe(ctx)
		m.loss.Record(!lost)

		// Drift correction: the probe's own duration counts against the
		// interval, so successive tick starts stay one interval apart. A
		// probe that outruns the interval skips the sleep and the tick
		// runs long.
		if d := m.cfg.Interval - m.cfg.Clock.Since(t0); d > 0 {
			if !m.sleep(ctx, d) {
				m.log.Debug("Monitor loop cancelled during interval sleep")
				return nil
			}
		}
		if ctx.Err() != nil {
			m.log.Debug("Monitor loop cancelled")
			return nil
		}

		cur, err := m.cfg.Counters.Counters(ctx, iface)
		if err != nil {
			return fmt.Errorf("failed to read counters for %s: %w", iface, err)
		}
		now := m.cfg.Clock.Now()
		download, upload := ComputeThroughput(prev, cur, now.Sub(prevAt))
		prev, prevAt = cur, now

		m.cfg.Reporter.ReportSample(Sample{
			Timestamp:    now,
			DownloadMbps: download,
			UploadMbps:   upload,
			RTT:          rtt,
			Loss:         lost,
			LossPct:      m.loss.LossPct(),
		})
		metrics.SamplesTotal.Inc()

		if m.cfg.Count > 0 {
			remaining--
			if remaining == 0 {
				m.log.Info("Configured sample count reached, stopping")
				return nil
			}
		}
	}
}

func (m *Monitor) probe(ctx context.Context) (rtt time.Duration, lost bool) {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	defer cancel()

	rtt, err := m.cfg.Probe.Probe(probeCtx, m.cfg.Host)
	if err != nil {
		m.log.Debug("Probe failed, recording loss", "host", m.cfg.Host, "error", err)
		metrics.ProbesTotal.WithLabelValues(metrics.ProbeResultLost).Inc()
		return 0, true
	}
	metrics.ProbesTotal.WithLabelValues(metrics.ProbeResultOK).Inc()
	metrics.ProbeDuration.Observe(rtt.Seconds())
	return rtt, false
}

func (m *Monitor) resolveInterface(ctx context.Context) (string, error) {
	ifaces, err := m.cfg.Counters.Interfaces(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enumerate interfaces: %w", err)
	}
	if m.cfg.Interface != "" {
		for _, it := range ifaces {
			if it.Name == m.cfg.Interface {
				return it.Name, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrInterfaceNotFound, m.cfg.Interface)
	}
	for _, it := range ifaces {
		if !it.Loopback {
			return it.Name, nil
		}
	}
	return "", ErrNoInterfaceAvailable
}

// sleep blocks for d on the configured clock; returns false if ctx was
// cancelled first.
func (m *Monitor) sleep(ctx context.Context, d time.Duration) bool {
	timer := m.cfg.Clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}

package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
)

// CounterSource reads cumulative interface byte counters.
type CounterSource interface {
	// Interfaces enumerates the interfaces known to the source.
	Interfaces(ctx context.Context) ([]InterfaceInfo, error)

	// Counters returns the current cumulative counters for an interface.
	Counters(ctx context.Context, name string) (InterfaceCounters, error)
}

// ProbeExecutor performs one bounded round-trip probe against a host.
// A non-nil error means the probe received no response in time.
type ProbeExecutor interface {
	Probe(ctx context.Context, host string) (time.Duration, error)
}

// Reporter renders samples for the operator.
type Reporter interface {
	ReportHeader(iface, host string)
	ReportSample(s Sample)
}

type Config struct {
	// Interface is the interface to monitor. Empty means the first
	// non-loopback interface from the counter source's enumeration.
	Interface string

	// Host is the probe target.
	Host string

	// Interval is the target period between tick starts.
	Interval time.Duration

	// ProbeTimeout bounds each probe, independently of Interval.
	ProbeTimeout time.Duration

	// Count is the number of samples to take. Zero means run until
	// cancelled.
	Count int

	// Counters is the counter source for the monitored interface.
	Counters CounterSource

	// Probe executes the per-tick latency probe.
	Probe ProbeExecutor

	// Reporter receives the header line and one sample per tick.
	Reporter Reporter

	// Clock is the clock used for tick timing. Defaults to the real clock.
	Clock clockwork.Clock
}

func (cfg *Config) Validate() error {
	if cfg.Host == "" {
		return errors.New("host is required")
	}
	if cfg.Interval <= 0 {
		return errors.New("interval must be greater than 0")
	}
	if cfg.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be greater than 0")
	}
	if cfg.Count < 0 {
		return errors.New("count must not be negative")
	}
	if cfg.Counters == nil {
		return errors.New("counter source is required")
	}
	if cfg.Probe == nil {
		return errors.New("probe executor is required")
	}
	if cfg.Reporter == nil {
		return errors.New("reporter is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return nil
}

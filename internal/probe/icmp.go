// Package probe executes single round-trip latency probes via ICMP.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const probeSize = 56 // 64 bytes - 8 byte ICMP header

// ICMP sends one echo request per probe and reports the round-trip time.
// Any failure to receive a reply within the caller's context deadline is a
// lost probe.
type ICMP struct {
	log        *slog.Logger
	privileged bool
}

func NewICMP(log *slog.Logger, privileged bool) *ICMP {
	return &ICMP{log: log, privileged: privileged}
}

// Probe pings the given host once and returns the round-trip time.
// NOTE: This assumes the caller has configured a timeout context.
func (p *ICMP) Probe(ctx context.Context, host string) (time.Duration, error) {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return 0, fmt.Errorf("failed to create pinger: %w", err)
	}
	defer pinger.Stop()
	pinger.SetPrivileged(p.privileged)
	pinger.Count = 1
	pinger.Size = probeSize

	p.log.Debug("Probing", "host", host, "privileged", p.privileged)
	if err := pinger.RunWithContext(ctx); err != nil {
		return 0, fmt.Errorf("probe failed: %w", err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, fmt.Errorf("no response from %s", host)
	}
	return stats.AvgRtt, nil
}

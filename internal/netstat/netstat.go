// Package netstat reads cumulative per-interface byte counters from the
// operating system, backed by gopsutil.
package netstat

import (
	"context"
	"fmt"
	"net"

	gopsnet "github.com/shirou/gopsutil/v4/net"

	"github.com/malbeclabs/linkmon/internal/monitor"
)

type Source struct{}

func New() *Source {
	return &Source{}
}

func (s *Source) Interfaces(ctx context.Context) ([]monitor.InterfaceInfo, error) {
	stats, err := gopsnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}
	infos := make([]monitor.InterfaceInfo, 0, len(stats))
	for _, st := range stats {
		infos = append(infos, monitor.InterfaceInfo{
			Name:     st.Name,
			Loopback: isLoopback(st.Name),
		})
	}
	return infos, nil
}

func (s *Source) Counters(ctx context.Context, name string) (monitor.InterfaceCounters, error) {
	stats, err := gopsnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return monitor.InterfaceCounters{}, fmt.Errorf("failed to read interface counters: %w", err)
	}
	for _, st := range stats {
		if st.Name == name {
			return monitor.InterfaceCounters{
				RxBytes: st.BytesRecv,
				TxBytes: st.BytesSent,
			}, nil
		}
	}
	return monitor.InterfaceCounters{}, fmt.Errorf("interface %s not present in counter snapshot", name)
}

func isLoopback(name string) bool {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		// Counter snapshots can name interfaces the stack no longer
		// exposes; fall back to the conventional loopback names.
		return name == "lo" || name == "lo0"
	}
	return iface.Flags&net.FlagLoopback != 0
}

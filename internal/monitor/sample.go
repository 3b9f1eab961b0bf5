package monitor

import "time"

// InterfaceCounters is a single cumulative snapshot of an interface's byte
// counters, captured at one instant and superseded on the next read.
type InterfaceCounters struct {
	// RxBytes is the cumulative number of bytes received by the interface.
	RxBytes uint64

	// TxBytes is the cumulative number of bytes transmitted by the interface.
	TxBytes uint64
}

// InterfaceInfo describes one interface known to a CounterSource.
type InterfaceInfo struct {
	Name     string
	Loopback bool
}

// Sample is one reporting interval's worth of measurements.
type Sample struct {
	// Timestamp is the time the sample was taken.
	Timestamp time.Time

	// DownloadMbps is the received throughput over the interval.
	DownloadMbps float64

	// UploadMbps is the transmitted throughput over the interval.
	UploadMbps float64

	// RTT is the round-trip time of the probe. Only valid when Loss is false.
	RTT time.Duration

	// Loss is true if the probe received no response.
	Loss bool

	// LossPct is the cumulative probe loss percentage for the run, 0-100.
	LossPct float64
}

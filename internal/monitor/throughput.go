package monitor

import "time"

// ComputeThroughput converts two cumulative counter snapshots and the
// measured wall-clock gap between them into download/upload rates in Mbps.
//
// Deltas are clamped at zero so that a counter reset or wrap reports a zero
// rate for the interval rather than a negative or absurd one. The caller
// must pass the actual elapsed time between the two reads, not the nominal
// sampling interval, so an overrunning tick does not distort the rate.
func ComputeThroughput(prev, cur InterfaceCounters, elapsed time.Duration) (downloadMbps, uploadMbps float64) {
	if elapsed <= 0 {
		return 0, 0
	}
	rxDelta := clampDelta(cur.RxBytes, prev.RxBytes)
	txDelta := clampDelta(cur.TxBytes, prev.TxBytes)
	seconds := elapsed.Seconds()
	downloadMbps = float64(rxDelta) * 8 / (1_000_000 * seconds)
	uploadMbps = float64(txDelta) * 8 / (1_000_000 * seconds)
	return downloadMbps, uploadMbps
}

func clampDelta(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

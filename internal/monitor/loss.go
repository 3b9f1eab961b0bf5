package monitor

// LossTracker accumulates probe outcomes across the whole run and derives a
// cumulative loss percentage. It is owned and mutated exclusively by the
// monitor loop; there is no reset.
type LossTracker struct {
	total uint64
	lost  uint64
}

// Record counts one probe attempt, and one loss if the probe failed.
func (t *LossTracker) Record(ok bool) {
	t.total++
	if !ok {
		t.lost++
	}
}

// LossPct returns the share of probes lost so far, 0-100.
// Returns 0 before any probe has been recorded.
func (t *LossTracker) LossPct() float64 {
	if t.total == 0 {
		return 0
	}
	return 100 * float64(t.lost) / float64(t.total)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ProbeResultOK   = "ok"
	ProbeResultLost = "lost"
)

var (
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "linkmon_build_info",
			Help: "Build information of the link monitor",
		},
		[]string{"version", "commit", "date"},
	)

	ProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkmon_probes_total",
		Help: "Total number of latency probes sent, by result",
	}, []string{"result"})

	ProbeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkmon_probe_duration_seconds",
		Help:    "Round-trip time of successful latency probes",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // ~0.5ms .. ~1s
	})

	SamplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkmon_samples_total",
		Help: "Total number of samples reported",
	})
)

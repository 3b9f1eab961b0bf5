package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/malbeclabs/linkmon/internal/metrics"
	"github.com/malbeclabs/linkmon/internal/monitor"
	"github.com/malbeclabs/linkmon/internal/netstat"
	"github.com/malbeclabs/linkmon/internal/probe"
	"github.com/malbeclabs/linkmon/internal/report"
)

var (
	// Set by LDFLAGS
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	defaultHost         = "8.8.8.8"
	defaultInterval     = 1.0
	defaultProbeTimeout = 1 * time.Second
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	showVersionFlag := flag.Bool("version", false, "show version and exit")
	verboseFlag := flag.Bool("verbose", false, "verbose mode - show debug logs")

	ifaceFlag := flag.String("interface", "", "network interface to monitor (default: first non-loopback interface)")
	hostFlag := flag.String("host", defaultHost, "host to probe for latency and packet-loss measurement")
	intervalFlag := flag.Float64("interval", defaultInterval, "seconds between samples")
	countFlag := flag.Int("count", 0, "number of samples to take (runs until interrupted if 0)")
	probeTimeoutFlag := flag.Duration("probe-timeout", defaultProbeTimeout, "timeout for each probe")
	unprivilegedFlag := flag.Bool("unprivileged", false, "probe with unprivileged UDP sockets instead of raw ICMP")

	metricsAddrFlag := flag.String("metrics-addr", "", "address to listen on for prometheus metrics (disabled if empty)")

	flag.Parse()

	if *showVersionFlag {
		fmt.Printf("version: %s, commit: %s, date: %s\n", version, commit, date)
		os.Exit(0)
	}

	log := newLogger(*verboseFlag)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Set up prometheus metrics server if enabled.
	if *metricsAddrFlag != "" {
		metrics.BuildInfo.WithLabelValues(version, commit, date).Set(1)
		go func() {
			listener, err := net.Listen("tcp", *metricsAddrFlag)
			if err != nil {
				log.Error("Failed to start prometheus metrics server listener", "error", err)
				os.Exit(1)
			}
			log.Info("Prometheus metrics server listening", "address", listener.Addr().String())
			http.Handle("/metrics", promhttp.Handler())
			if err := http.Serve(listener, nil); err != nil {
				log.Error("Failed to start prometheus metrics server", "error", err)
				os.Exit(1)
			}
		}()
	}

	mon, err := monitor.New(log, monitor.Config{
		Interface:    *ifaceFlag,
		Host:         *hostFlag,
		Interval:     time.Duration(*intervalFlag * float64(time.Second)),
		ProbeTimeout: *probeTimeoutFlag,
		Count:        *countFlag,
		Counters:     netstat.New(),
		Probe:        probe.NewICMP(log, !*unprivilegedFlag),
		Reporter:     report.NewText(os.Stdout),
	})
	if err != nil {
		log.Error("Failed to create monitor", "error", err)
		return err
	}

	if err := mon.Run(ctx); err != nil {
		log.Error("Monitor failed", "error", err)
		return err
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	// Logs go to stderr so sample rows on stdout stay machine-readable.
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	}))
}

package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbeclabs/linkmon/internal/monitor"
	"github.com/malbeclabs/linkmon/internal/report"
)

func TestLinkMonitor_TextReporter(t *testing.T) {
	t.Parallel()

	t.Run("header echoes interface and host", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		r := report.NewText(&buf)
		r.ReportHeader("eth0", "8.8.8.8")

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Monitoring interface 'eth0' | Host: 8.8.8.8", lines[0])
		assert.Equal(t, "Time                Download(Mbps)  Upload(Mbps)  Latency(ms)  PacketLoss(%)", lines[1])
	})

	t.Run("renders a sample as one fixed-width row", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		r := report.NewText(&buf)
		r.ReportSample(monitor.Sample{
			Timestamp:    time.Date(2026, 1, 2, 12, 0, 0, 0, time.Local),
			DownloadMbps: 0.064,
			UploadMbps:   0.032,
			RTT:          12345 * time.Microsecond,
			LossPct:      0,
		})

		assert.Equal(t,
			"12:00:00                 0.06          0.03    12.35          0.00\n",
			buf.String(),
		)
	})

	t.Run("prints the loss sentinel when the probe had no response", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		r := report.NewText(&buf)
		r.ReportSample(monitor.Sample{
			Timestamp:    time.Date(2026, 1, 2, 23, 59, 9, 0, time.Local),
			DownloadMbps: 1.5,
			UploadMbps:   0.25,
			Loss:         true,
			LossPct:      50,
		})

		assert.Equal(t,
			"23:59:09                 1.50          0.25     loss         50.00\n",
			buf.String(),
		)
	})
}

// Package report renders samples as fixed-width rows for a terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/malbeclabs/linkmon/internal/monitor"
)

// lossSentinel is printed in the latency column when the probe received no
// response, padded to the column's width.
const lossSentinel = "   loss"

type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (r *Text) ReportHeader(iface, host string) {
	fmt.Fprintf(r.w, "Monitoring interface '%s' | Host: %s\n", iface, host)
	fmt.Fprintln(r.w, "Time                Download(Mbps)  Upload(Mbps)  Latency(ms)  PacketLoss(%)")
}

func (r *Text) ReportSample(s monitor.Sample) {
	latency := lossSentinel
	if !s.Loss {
		latency = fmt.Sprintf("%7.2f", float64(s.RTT)/float64(time.Millisecond))
	}
	fmt.Fprintf(r.w, "%s         %12.2f  %12.2f  %s  %12.2f\n",
		s.Timestamp.Local().Format("15:04:05"),
		s.DownloadMbps,
		s.UploadMbps,
		latency,
		s.LossPct,
	)
}

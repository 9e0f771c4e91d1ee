package traffic

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wifimon/wifimon/common/humanize"
	"github.com/wifimon/wifimon/stats"
)

// Monitor samples one interface's counters at a fixed interval and writes a
// live rate table to Output. A single Monitor owns its sampling state and
// runs one loop at a time.
type Monitor struct {
	Source   stats.Source
	Output   io.Writer
	Interval time.Duration
}

// Run blocks until ctx is cancelled or a counter read fails. The initial
// read errors out immediately when the interface is unknown; cancellation
// is observed at the sleep boundary, so a cancelled run never leaves a
// partial row behind.
func (m *Monitor) Run(ctx context.Context, ifaceName string) error {
	previous, err := m.Source.Counters(ifaceName)
	if err != nil {
		return err
	}
	m.writeHeader(ifaceName)
	startTime := time.Now()
	timer := time.NewTimer(m.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		current, err := m.Source.Counters(ifaceName)
		if err != nil {
			return err
		}
		downRate, upRate := rates(previous, current, m.Interval)
		elapsed := int(time.Since(startTime) / time.Second)
		fmt.Fprintf(m.Output, "%7ds  %12s  %12s  %12s  %12s\n",
			elapsed,
			humanize.Bytes(float64(current.BytesRecv)),
			humanize.Bytes(float64(current.BytesSent)),
			humanize.Rate(downRate),
			humanize.Rate(upRate))
		previous = current
		timer.Reset(m.Interval)
	}
}

func (m *Monitor) writeHeader(ifaceName string) {
	divider := strings.Repeat("-", 72)
	fmt.Fprintf(m.Output, "Monitoring interface: %s (Ctrl+C to stop)\n", ifaceName)
	fmt.Fprintf(m.Output, "Start time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(m.Output, divider)
	fmt.Fprintf(m.Output, "%7s  %12s  %12s  %12s  %12s\n", "Elapsed", "RX total", "TX total", "Down/s", "Up/s")
	fmt.Fprintln(m.Output, divider)
}

// rates converts the counter delta since the previous snapshot into
// bytes/second. A shrunken counter means the interface was reset or
// re-created; that tick reports zero and the caller rebases on the new
// snapshot.
func rates(previous, current stats.Snapshot, interval time.Duration) (down float64, up float64) {
	if current.BytesRecv < previous.BytesRecv || current.BytesSent < previous.BytesSent {
		return 0, 0
	}
	seconds := interval.Seconds()
	down = float64(current.BytesRecv-previous.BytesRecv) / seconds
	up = float64(current.BytesSent-previous.BytesSent) / seconds
	return
}

package traffic

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wifimon/wifimon/stats"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mutex     sync.Mutex
	name      string
	snapshots []stats.Snapshot
	index     int
}

func (s *fakeSource) Interfaces() ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return []string{s.name}, nil
}

func (s *fakeSource) Counters(name string) (stats.Snapshot, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if name != s.name {
		return stats.Snapshot{}, &stats.NotFoundError{Name: name, Available: []string{s.name}}
	}
	snapshot := s.snapshots[s.index]
	if s.index < len(s.snapshots)-1 {
		s.index++
	}
	return snapshot, nil
}

func (s *fakeSource) rename(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.name = name
}

type syncBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

func TestRates(t *testing.T) {
	down, up := rates(
		stats.Snapshot{BytesRecv: 1000, BytesSent: 500},
		stats.Snapshot{BytesRecv: 1500, BytesSent: 800},
		1*time.Second,
	)
	require.Equal(t, 500.0, down)
	require.Equal(t, 300.0, up)

	down, up = rates(
		stats.Snapshot{BytesRecv: 1000, BytesSent: 500},
		stats.Snapshot{BytesRecv: 1500, BytesSent: 800},
		2*time.Second,
	)
	require.Equal(t, 250.0, down)
	require.Equal(t, 150.0, up)
}

func TestRatesCounterReset(t *testing.T) {
	down, up := rates(
		stats.Snapshot{BytesRecv: 1000, BytesSent: 500},
		stats.Snapshot{BytesRecv: 100, BytesSent: 50},
		1*time.Second,
	)
	require.Zero(t, down)
	require.Zero(t, up)
}

func TestMonitorRun(t *testing.T) {
	source := &fakeSource{
		name: "wlan0",
		snapshots: []stats.Snapshot{
			{BytesRecv: 1000, BytesSent: 500},
			{BytesRecv: 1500, BytesSent: 800},
			{BytesRecv: 2500, BytesSent: 1800},
		},
	}
	output := &syncBuffer{}
	monitor := &Monitor{
		Source:   source,
		Output:   output,
		Interval: 10 * time.Millisecond,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx, "wlan0")
	}()
	deadline := time.Now().Add(5 * time.Second)
	for strings.Count(output.String(), "\n") < 7 {
		require.True(t, time.Now().Before(deadline), "monitor produced no output")
		time.Sleep(time.Millisecond)
	}
	cancel()
	require.NoError(t, <-done)

	content := output.String()
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	require.Equal(t, "Monitoring interface: wlan0 (Ctrl+C to stop)", lines[0])
	require.Contains(t, lines[1], "Start time: ")
	require.Contains(t, lines[3], "Elapsed")
	// 500 B delta over a 10ms tick = 48.83 KB/s down, 300 B = 29.30 KB/s up
	require.Contains(t, content, "48.83 KB/s")
	require.Contains(t, content, "29.30 KB/s")
	require.Contains(t, content, "1.46 KB") // 1500 B cumulative received
	for _, line := range lines[5:] {
		require.NotEmpty(t, strings.TrimSpace(line), "partial output row")
	}
}

func TestMonitorRunCounterReset(t *testing.T) {
	source := &fakeSource{
		name: "wlan0",
		snapshots: []stats.Snapshot{
			{BytesRecv: 100000, BytesSent: 50000},
			{BytesRecv: 100, BytesSent: 50},
		},
	}
	output := &syncBuffer{}
	monitor := &Monitor{Source: source, Output: output, Interval: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx, "wlan0")
	}()
	deadline := time.Now().Add(5 * time.Second)
	for strings.Count(output.String(), "\n") < 6 {
		require.True(t, time.Now().Before(deadline), "monitor produced no output")
		time.Sleep(time.Millisecond)
	}
	cancel()
	require.NoError(t, <-done)
	require.Contains(t, output.String(), "0.00 B/s")
}

func TestMonitorRunUnknownInterface(t *testing.T) {
	source := &fakeSource{name: "wlan0", snapshots: []stats.Snapshot{{}}}
	monitor := &Monitor{Source: source, Output: io.Discard, Interval: time.Millisecond}
	err := monitor.Run(context.Background(), "eth9")
	var notFound *stats.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "eth9", notFound.Name)
	require.Equal(t, []string{"wlan0"}, notFound.Available)
}

func TestMonitorRunInterfaceLost(t *testing.T) {
	source := &fakeSource{name: "wlan0", snapshots: []stats.Snapshot{{BytesRecv: 1, BytesSent: 1}}}
	monitor := &Monitor{Source: source, Output: io.Discard, Interval: time.Millisecond}
	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(context.Background(), "wlan0")
	}()
	time.Sleep(5 * time.Millisecond)
	source.rename("wlan1")
	var notFound *stats.NotFoundError
	require.ErrorAs(t, <-done, &notFound)
}

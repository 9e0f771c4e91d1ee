package stats

import (
	"strings"

	E "github.com/sagernet/sing/common/exceptions"
	F "github.com/sagernet/sing/common/format"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// Snapshot is a point-in-time read of one interface's cumulative byte
// counters. Values only decrease when the OS resets the counters.
type Snapshot struct {
	BytesRecv uint64
	BytesSent uint64
}

// Source enumerates network interfaces and reads their byte counters.
type Source interface {
	Interfaces() ([]string, error)
	Counters(name string) (Snapshot, error)
}

// NotFoundError reports a counter read for an interface the OS does not
// currently expose. Available carries every enumerated name to aid
// diagnosis.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return F.ToString("interface '", e.Name, "' not found. Available: ", strings.Join(e.Available, ", "))
}

type gopsutilSource struct{}

// NewSource returns a Source backed by the OS per-NIC I/O counters.
func NewSource() Source {
	return &gopsutilSource{}
}

func (s *gopsutilSource) Interfaces() ([]string, error) {
	counters, err := gopsnet.IOCounters(true)
	if err != nil {
		return nil, E.Cause(err, "enumerate interfaces")
	}
	names := make([]string, 0, len(counters))
	for _, counter := range counters {
		names = append(names, counter.Name)
	}
	return names, nil
}

func (s *gopsutilSource) Counters(name string) (Snapshot, error) {
	counters, err := gopsnet.IOCounters(true)
	if err != nil {
		return Snapshot{}, E.Cause(err, "read interface counters")
	}
	names := make([]string, 0, len(counters))
	for _, counter := range counters {
		if counter.Name == name {
			return Snapshot{
				BytesRecv: counter.BytesRecv,
				BytesSent: counter.BytesSent,
			}, nil
		}
		names = append(names, counter.Name)
	}
	return Snapshot{}, &NotFoundError{Name: name, Available: names}
}

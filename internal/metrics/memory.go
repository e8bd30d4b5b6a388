package metrics

import (
	"fmt"
	"runtime"

	"github.com/agbru/fibs/internal/format"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	TotalAlloc   uint64 // cumulative bytes allocated
}

// String renders the snapshot on one line for --details output.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap %s, sys %s, allocated %s, gc cycles %d",
		format.FormatBytes(s.HeapAlloc), format.FormatBytes(s.Sys),
		format.FormatBytes(s.TotalAlloc), s.NumGC)
}

// Sub returns the allocation and GC activity between two snapshots. Gauge-like
// fields are taken from s.
func (s MemorySnapshot) Sub(before MemorySnapshot) MemorySnapshot {
	d := s
	d.TotalAlloc = s.TotalAlloc - min(before.TotalAlloc, s.TotalAlloc)
	d.NumGC = s.NumGC - min(before.NumGC, s.NumGC)
	d.PauseTotalNs = s.PauseTotalNs - min(before.PauseTotalNs, s.PauseTotalNs)
	return d
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct {
	read func(*runtime.MemStats)
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{read: runtime.ReadMemStats}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	mc.read(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		TotalAlloc:   m.TotalAlloc,
	}
}

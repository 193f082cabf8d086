package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler records timing statistics for named sections such as callback
// dispatch. It is disabled until SetEnabled(true) so the audio thread pays
// nothing by default.
type Profiler struct {
	mu           sync.RWMutex
	measurements map[string]*Measurement
	enabled      atomic.Bool
	maxSamples   int
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	Name        string
	Count       uint64
	Total       time.Duration
	Min         time.Duration
	Max         time.Duration
	Last        time.Duration
	samples     []time.Duration
	sampleIndex int
}

// DefaultProfiler is the global profiler instance.
var DefaultProfiler = NewProfiler(1000)

// NewProfiler creates a disabled profiler keeping maxSamples recent samples per section.
func NewProfiler(maxSamples int) *Profiler {
	if maxSamples <= 0 {
		maxSamples = 1
	}
	return &Profiler{
		measurements: make(map[string]*Measurement),
		maxSamples:   maxSamples,
	}
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled.Load()
}

var noop = func() {}

// Start begins timing a named section and returns the function that stops it.
func (p *Profiler) Start(name string) func() {
	if !p.enabled.Load() {
		return noop
	}

	start := time.Now()
	return func() {
		p.record(name, time.Since(start))
	}
}

// Time measures the execution time of fn.
func (p *Profiler) Time(name string, fn func()) {
	stop := p.Start(name)
	defer stop()
	fn()
}

func (p *Profiler) record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{
			Name:    name,
			Min:     elapsed,
			Max:     elapsed,
			samples: make([]time.Duration, p.maxSamples),
		}
		p.measurements[name] = m
	}

	m.Count++
	m.Total += elapsed
	m.Last = elapsed
	if elapsed < m.Min {
		m.Min = elapsed
	}
	if elapsed > m.Max {
		m.Max = elapsed
	}

	m.samples[m.sampleIndex] = elapsed
	m.sampleIndex = (m.sampleIndex + 1) % p.maxSamples
}

// Measurement returns a copy of the statistics for a named section.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, exists := p.measurements[name]
	if !exists {
		return Measurement{}, false
	}
	return m.snapshot(), true
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.measurements = make(map[string]*Measurement)
}

// Report renders every measurement against a per-frame time budget. A zero
// budget omits the load column.
func (p *Profiler) Report(frameBudget time.Duration) string {
	p.mu.RLock()
	names := make([]string, 0, len(p.measurements))
	for name := range p.measurements {
		names = append(names, name)
	}
	sort.Strings(names)
	snaps := make([]Measurement, 0, len(names))
	for _, name := range names {
		snaps = append(snaps, p.measurements[name].snapshot())
	}
	p.mu.RUnlock()

	if len(snaps) == 0 {
		return "No measurements recorded"
	}

	var sb strings.Builder
	for _, m := range snaps {
		fmt.Fprintf(&sb, "%s: count=%d avg=%v min=%v max=%v p99=%v",
			m.Name, m.Count, m.Average(), m.Min, m.Max, m.Percentile(99))
		if frameBudget > 0 {
			fmt.Fprintf(&sb, " load=%.2f%%", float64(m.Max)/float64(frameBudget)*100)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Measurement) snapshot() Measurement {
	c := *m
	c.samples = append([]time.Duration(nil), m.samples...)
	return c
}

// Average returns the average time for this measurement.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// Percentile returns the p-th percentile of the recent samples.
func (m Measurement) Percentile(p float64) time.Duration {
	valid := make([]time.Duration, 0, len(m.samples))
	for i := 0; i < len(m.samples) && uint64(i) < m.Count; i++ {
		valid = append(valid, m.samples[i])
	}
	if len(valid) == 0 {
		return 0
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	return valid[int(float64(len(valid)-1)*p/100.0)]
}

// FrameBudget is the wall time of one engine audio frame.
func FrameBudget(samplesPerFrame, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(samplesPerFrame) / float64(sampleRate) * float64(time.Second))
}

// Start begins timing a named section using the default profiler.
func Start(name string) func() {
	return DefaultProfiler.Start(name)
}

// EnableProfiling enables the default profiler.
func EnableProfiling() {
	DefaultProfiler.SetEnabled(true)
}

// DisableProfiling disables the default profiler.
func DisableProfiling() {
	DefaultProfiler.SetEnabled(false)
}

// Package resource periodically samples process RSS and CPU usage, adapted
// from the teacher's pkg/monitoring resource monitor onto gopsutil so a long
// follow-mode run can log its own footprint growth (the item index in
// particular can hold millions of entries).
package resource

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
)

// Sample is one point-in-time reading of process resource usage.
type Sample struct {
	Timestamp   time.Time
	RSSBytes    uint64
	CPUPercent  float64
	NumGoroutine int
}

// Monitor samples the current process on an interval and logs the result.
type Monitor struct {
	logger   *logrus.Logger
	interval time.Duration
	proc     *process.Process

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu   sync.RWMutex
	last Sample
}

// NewMonitor returns a Monitor sampling every interval. A non-positive
// interval defaults to 30s.
func NewMonitor(logger *logrus.Logger, interval time.Duration) (*Monitor, error) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{logger: logger, interval: interval, proc: proc, ctx: ctx, cancel: cancel}, nil
}

// Start begins sampling in the background.
func (m *Monitor) Start() {
	m.wg.Add(1)
	go m.loop()
}

// Stop halts sampling and waits for the background goroutine to exit.
func (m *Monitor) Stop() {
	m.cancel()
	m.wg.Wait()
}

// Last returns the most recent sample taken.
func (m *Monitor) Last() Sample {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *Monitor) loop() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

func (m *Monitor) sample() {
	memInfo, err := m.proc.MemoryInfo()
	if err != nil {
		m.logger.WithError(err).Warn("resource monitor: cannot read memory info")
		return
	}
	cpuPct, err := m.proc.CPUPercent()
	if err != nil {
		m.logger.WithError(err).Warn("resource monitor: cannot read cpu percent")
		return
	}

	s := Sample{
		Timestamp:  time.Now(),
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPct,
	}

	m.mu.Lock()
	m.last = s
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"rss_mb": s.RSSBytes / (1024 * 1024),
		"cpu_pct": s.CPUPercent,
	}).Debug("resource sample")
}

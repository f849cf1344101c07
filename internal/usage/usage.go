// Package usage tracks process-wide inference counters.
package usage

import (
	"sync/atomic"
	"time"

	"github.com/psanzceste/flight-delay-api/model"
)

// Recorder owns the prediction counter and the process start time. The
// counter only moves through RecordSuccess, one increment per successfully
// scored record, so concurrent handlers cannot lose updates.
type Recorder struct {
	total atomic.Int64
	start time.Time
}

// NewRecorder creates a Recorder with the start time set to now.
func NewRecorder() *Recorder {
	return &Recorder{start: time.Now()}
}

// RecordSuccess increments the total prediction counter.
func (r *Recorder) RecordSuccess() {
	r.total.Add(1)
}

// Snapshot returns the current usage report.
func (r *Recorder) Snapshot() model.UsageReport {
	uptime := int64(time.Since(r.start).Seconds())
	if uptime < 0 {
		uptime = 0
	}
	return model.UsageReport{
		TotalPredictions: r.total.Load(),
		UptimeSeconds:    uptime,
	}
}

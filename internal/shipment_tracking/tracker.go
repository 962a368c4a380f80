package shipmenttracking

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/kargohub/sendeo-gateway/internal/delivery"
)

// Tracker periodically re-queries the carrier for shipments created through
// this process and logs status transitions. The registry is in-memory only;
// it empties when the process recycles, which is acceptable because the
// caller owns the durable shipment records.
type Tracker struct {
	provider  delivery.Provider
	scheduler gocron.Scheduler
	interval  time.Duration

	mu      sync.Mutex
	watched map[string]string // reference id -> last seen status
}

// NewTracker creates a tracker polling shipment statuses on the given
// interval.
func NewTracker(provider delivery.Provider, interval time.Duration) (*Tracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &Tracker{
		provider:  provider,
		scheduler: scheduler,
		interval:  interval,
		watched:   make(map[string]string),
	}, nil
}

// Start begins the polling job.
func (t *Tracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.interval),
		gocron.NewTask(
			func() {
				t.checkShipmentStatuses()
			},
		),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

// Stop shuts the polling job down.
func (t *Tracker) Stop() error {
	return t.scheduler.Shutdown()
}

// Watch adds a carrier reference id to the polling set.
func (t *Tracker) Watch(referenceID string) {
	if referenceID == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.watched[referenceID]; !ok {
		t.watched[referenceID] = ""
	}
}

// Unwatch removes a reference id from the polling set.
func (t *Tracker) Unwatch(referenceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.watched, referenceID)
}

// Watching reports whether a reference id is currently polled.
func (t *Tracker) Watching(referenceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.watched[referenceID]
	return ok
}

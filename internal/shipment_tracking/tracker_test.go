package shipmenttracking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	mu       sync.Mutex
	statuses map[string]*delivery.StatusSummary
	checked  []string
}

func (s *stubProvider) CreateShipment(_ context.Context, _ delivery.CreateShipmentRequest) (*delivery.ShipmentResult, error) {
	return nil, nil
}

func (s *stubProvider) TrackShipment(_ context.Context, _ string) (*delivery.TrackingResult, error) {
	return nil, nil
}

func (s *stubProvider) GetShipmentStatus(_ context.Context, referenceID string) (*delivery.StatusSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checked = append(s.checked, referenceID)
	return s.statuses[referenceID], nil
}

func (s *stubProvider) CalculateRate(_ context.Context, _ delivery.RateRequest) (*delivery.RateResult, error) {
	return nil, nil
}

func TestTracker_WatchAndStatusTransition(t *testing.T) {
	provider := &stubProvider{
		statuses: map[string]*delivery.StatusSummary{
			"ORD1": {ReferenceID: "ORD1", Status: "IN_TRANSIT"},
		},
	}

	tracker, err := NewTracker(provider, time.Minute)
	require.NoError(t, err)

	tracker.Watch("ORD1")
	tracker.Watch("") // ignored
	require.True(t, tracker.Watching("ORD1"))

	tracker.checkShipmentStatuses()

	tracker.mu.Lock()
	assert.Equal(t, "IN_TRANSIT", tracker.watched["ORD1"])
	tracker.mu.Unlock()
	assert.Equal(t, []string{"ORD1"}, provider.checked)
}

func TestTracker_DeliveredShipmentIsDropped(t *testing.T) {
	provider := &stubProvider{
		statuses: map[string]*delivery.StatusSummary{
			"ORD2": {ReferenceID: "ORD2", Status: "DELIVERED", Delivered: true},
		},
	}

	tracker, err := NewTracker(provider, time.Minute)
	require.NoError(t, err)

	tracker.Watch("ORD2")
	tracker.checkShipmentStatuses()

	assert.False(t, tracker.Watching("ORD2"))
}

package shipmenttracking

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const statusCheckTimeout = 30 * time.Second

// checkShipmentStatuses polls the carrier once for every watched shipment.
// Errors are logged and the shipment stays watched; the next tick tries
// again.
func (t *Tracker) checkShipmentStatuses() {
	t.mu.Lock()
	refs := make(map[string]string, len(t.watched))
	for ref, status := range t.watched {
		refs[ref] = status
	}
	t.mu.Unlock()

	for ref, lastStatus := range refs {
		ctx, cancel := context.WithTimeout(context.Background(), statusCheckTimeout)
		summary, err := t.provider.GetShipmentStatus(ctx, ref)
		cancel()

		if err != nil {
			log.Error().Err(err).Str("reference_id", ref).Msg("failed to check shipment status")
			continue
		}

		if summary.Status != lastStatus {
			log.Info().
				Str("reference_id", ref).
				Str("old_status", lastStatus).
				Str("new_status", summary.Status).
				Msg("shipment status changed")

			t.mu.Lock()
			if _, ok := t.watched[ref]; ok {
				t.watched[ref] = summary.Status
			}
			t.mu.Unlock()
		}

		if summary.Delivered {
			log.Info().Str("reference_id", ref).Msg("shipment delivered, no longer tracking")
			t.Unwatch(ref)
		}
	}
}

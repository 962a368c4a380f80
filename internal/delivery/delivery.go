package delivery

import (
	"context"
)

// Provider is the contract the order-creation workflow programs against.
// Implementations talk to one carrier; the caller owns persistence of the
// returned tracking identifiers.
type Provider interface {
	CreateShipment(ctx context.Context, request CreateShipmentRequest) (*ShipmentResult, error)
	TrackShipment(ctx context.Context, referenceID string) (*TrackingResult, error)
	GetShipmentStatus(ctx context.Context, referenceID string) (*StatusSummary, error)
	CalculateRate(ctx context.Context, request RateRequest) (*RateResult, error)
}

package sendeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
)

// TrackShipment returns the full movement timeline for a shipment.
func (s *Service) TrackShipment(ctx context.Context, referenceID string) (*delivery.TrackingResult, error) {
	if referenceID == "" {
		return nil, &delivery.ValidationError{Field: "referenceId"}
	}

	raw, err := s.call(ctx, APIQuery, http.MethodGet, "/trackshipment/"+referenceID, nil)
	if err != nil {
		return nil, err
	}

	var parsed trackShipmentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tracking response: %w", err)
	}

	result := &delivery.TrackingResult{
		ReferenceID: parsed.ReferenceID,
		Events:      make([]delivery.TrackingEvent, 0, len(parsed.Events)),
	}
	if result.ReferenceID == "" {
		result.ReferenceID = referenceID
	}
	for _, event := range parsed.Events {
		result.Events = append(result.Events, delivery.TrackingEvent{
			Date:        event.EventDate,
			Status:      event.Status,
			Description: event.Description,
			Location:    event.Branch,
		})
	}

	return result, nil
}

// GetShipmentStatus returns a one-line summary instead of the full timeline.
func (s *Service) GetShipmentStatus(ctx context.Context, referenceID string) (*delivery.StatusSummary, error) {
	if referenceID == "" {
		return nil, &delivery.ValidationError{Field: "referenceId"}
	}

	raw, err := s.call(ctx, APIQuery, http.MethodGet, "/getshipmentstatus/"+referenceID, nil)
	if err != nil {
		return nil, err
	}

	var parsed shipmentStatusResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}

	summary := &delivery.StatusSummary{
		ReferenceID: parsed.ReferenceID,
		Status:      parsed.Status,
		Description: parsed.Description,
		UpdatedAt:   parsed.UpdatedAt,
		Delivered:   parsed.Delivered,
	}
	if summary.ReferenceID == "" {
		summary.ReferenceID = referenceID
	}

	return summary, nil
}

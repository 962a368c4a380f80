package sendeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
)

const (
	defaultWeightKg = 1
	defaultDesi     = 2
)

// CalculateRate asks the query API what a shipment would cost. The parcel is
// synthetic: a single line item with SMS preferences left at the carrier
// defaults. Weight and desi default to 1kg/2 desi when omitted.
func (s *Service) CalculateRate(ctx context.Context, request delivery.RateRequest) (*delivery.RateResult, error) {
	if request.CityCode == 0 {
		return nil, &delivery.ValidationError{Field: "cityCode"}
	}

	weight := request.WeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}
	desi := request.Desi
	if desi <= 0 {
		desi = defaultDesi
	}

	body := calculateRequest{
		CityCode:     request.CityCode,
		DistrictCode: request.DistrictCode,
		Address:      request.Address,
		PieceList: []piecePayload{
			{Kg: weight, Desi: desi},
		},
	}

	raw, err := s.call(ctx, APIQuery, http.MethodPost, "/calculate", body)
	if err != nil {
		return nil, err
	}

	var parsed calculateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rate response: %w", err)
	}

	return &delivery.RateResult{
		Amount:   parsed.Amount,
		Currency: parsed.Currency,
	}, nil
}

package sendeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kargohub/sendeo-gateway/internal/geocode"
)

// ListDistricts fetches the carrier's district table for a province from the
// reference API. It backs the resolver's live tier; the resolver treats any
// error here as a signal to fall through to its offline tiers.
func (s *Service) ListDistricts(ctx context.Context, cityCode int) ([]geocode.District, error) {
	raw, err := s.call(ctx, APIReference, http.MethodGet, fmt.Sprintf("/getdistricts/%d", cityCode), nil)
	if err != nil {
		return nil, err
	}

	var districts []geocode.District
	if err := json.Unmarshal(raw, &districts); err != nil {
		return nil, fmt.Errorf("failed to parse district list: %w", err)
	}

	return districts, nil
}

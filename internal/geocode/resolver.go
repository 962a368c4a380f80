package geocode

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Source tells how a district code was obtained, so logs can distinguish a
// confident resolution from a guess. It is never shown to the end customer.
type Source string

const (
	SourceLive      Source = "live"
	SourceStatic    Source = "static"
	SourceHeuristic Source = "heuristic"
)

// ResolvedAddress is the outcome of mapping free-text city/district names to
// the carrier's numeric codes.
type ResolvedAddress struct {
	CityCode     int
	DistrictCode int
	Source       Source
}

// DistrictLister fetches the carrier's own district table for a province.
// The carrier client implements this on top of the reference API.
type DistrictLister interface {
	ListDistricts(ctx context.Context, cityCode int) ([]District, error)
}

// Resolver maps the city and district names customers type into carrier
// codes. There is no closed-form public mapping for these codes, so the
// resolver degrades through three tiers (live lookup, static table,
// heuristic) instead of ever failing: a wrong district still routes to the
// right province, a blocked order routes nowhere.
type Resolver struct {
	lister          DistrictLister
	defaultCityCode int
}

func NewResolver(lister DistrictLister, defaultCityCode int) *Resolver {
	return &Resolver{
		lister:          lister,
		defaultCityCode: defaultCityCode,
	}
}

// Resolve maps a (city name, district name) pair to carrier codes. It never
// returns an error: city misses fall back to the configured default province
// and district misses degrade tier by tier down to a synthesized code.
func (r *Resolver) Resolve(ctx context.Context, cityName, districtName string) ResolvedAddress {
	cityCode := r.ResolveCity(cityName)
	districtCode, source := r.resolveDistrict(ctx, cityCode, districtName)

	log.Debug().
		Str("city", cityName).
		Str("district", districtName).
		Int("city_code", cityCode).
		Int("district_code", districtCode).
		Str("source", string(source)).
		Msg("resolved recipient address")

	return ResolvedAddress{
		CityCode:     cityCode,
		DistrictCode: districtCode,
		Source:       source,
	}
}

// ResolveCity returns the plate code for a free-text province name. Exact
// match first, then a normalized retry that also covers known aliases. An
// unrecognized name resolves to the configured default province; city
// resolution must never block order creation.
func (r *Resolver) ResolveCity(name string) int {
	for _, city := range Cities {
		if city.Name == name {
			return city.Code
		}
	}

	if code, ok := cityIndex[Normalize(name)]; ok {
		return code
	}

	log.Warn().
		Str("city", name).
		Int("fallback_code", r.defaultCityCode).
		Msg("city name not recognized, using default province")

	return r.defaultCityCode
}

func (r *Resolver) resolveDistrict(ctx context.Context, cityCode int, districtName string) (int, Source) {
	query := Normalize(districtName)

	// Tier 1: live reference-API lookup. Any failure here (network, carrier
	// error, empty list) falls through to the static table.
	if query != "" && r.lister != nil {
		districts, err := r.lister.ListDistricts(ctx, cityCode)
		if err != nil {
			log.Warn().Err(err).Int("city_code", cityCode).Msg("live district lookup failed, falling back")
		} else if code, ok := matchDistrict(districts, query); ok {
			return code, SourceLive
		}
	}

	// Tier 2: offline table of manually captured mappings.
	if query != "" {
		if code, ok := matchDistrict(staticDistricts[cityCode], query); ok {
			return code, SourceStatic
		}
	}

	// Tier 3: synthesize a code that at least lands in the right
	// province-level bucket at the carrier.
	return cityCode*100 + 18, SourceHeuristic
}

// matchDistrict compares a normalized query against a candidate list.
// Equality wins, but containment either way is accepted too so abbreviated
// or partially typed district names still match.
func matchDistrict(districts []District, query string) (int, bool) {
	for _, district := range districts {
		name := Normalize(district.Name)
		if name == "" {
			continue
		}
		if name == query || strings.Contains(name, query) || strings.Contains(query, name) {
			return district.Code, true
		}
	}
	return 0, false
}

package sendeo

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// The carrier delivers token expiry as "DD.MM.YYYY HH:mm:ss" local time,
	// not ISO-8601.
	tokenExpireLayout = "02.01.2006 15:04:05"

	// tokenSafetyMargin keeps us from racing the real expiry: a token is
	// refreshed once it is within this margin of expiring.
	tokenSafetyMargin = time.Minute

	// fallbackTokenLifetime is assumed when the carrier omits or mangles the
	// expiry field. Lifetime is advisory only; the carrier rejects a stale
	// token itself.
	fallbackTokenLifetime = time.Hour
)

type cachedToken struct {
	value     string
	expiresAt time.Time
}

func (t cachedToken) usable(now time.Time) bool {
	return t.value != "" && now.Before(t.expiresAt.Add(-tokenSafetyMargin))
}

// tokenCache holds the one process-wide bearer token. It is created lazily
// on the first authenticated call, refreshed in place and never torn down;
// the singleflight group collapses concurrent refreshes into one identity
// call.
type tokenCache struct {
	mu    sync.Mutex
	token cachedToken
	group singleflight.Group
}

type tokenRequest struct {
	CustomerNumber string `json:"customerNumber"`
	Password       string `json:"password"`
	IdentityType   int    `json:"identityType"`
}

type tokenResponse struct {
	JWT           string `json:"jwt"`
	Token         string `json:"token"`
	JWTExpireDate string `json:"jwtExpireDate"`
}

// bearerToken returns the cached token, refreshing it when absent or within
// the safety margin of expiry.
func (s *Service) bearerToken(ctx context.Context) (string, error) {
	s.tokens.mu.Lock()
	token := s.tokens.token
	s.tokens.mu.Unlock()

	if token.usable(time.Now()) {
		return token.value, nil
	}

	value, err, _ := s.tokens.group.Do("token", func() (interface{}, error) {
		// A caller that queued behind the winning refresh sees the fresh
		// token here and skips the identity call entirely.
		s.tokens.mu.Lock()
		token := s.tokens.token
		s.tokens.mu.Unlock()
		if token.usable(time.Now()) {
			return token.value, nil
		}

		fresh, err := s.requestToken(ctx)
		if err != nil {
			return "", err
		}

		s.tokens.mu.Lock()
		s.tokens.token = fresh
		s.tokens.mu.Unlock()

		log.Info().Time("expires_at", fresh.expiresAt).Msg("carrier bearer token refreshed")

		return fresh.value, nil
	})
	if err != nil {
		return "", err
	}

	return value.(string), nil
}

func (s *Service) requestToken(ctx context.Context) (cachedToken, error) {
	creds, err := s.credentialsFor(APIIdentity)
	if err != nil {
		return cachedToken{}, err
	}

	body := tokenRequest{
		CustomerNumber: creds.CustomerNumber,
		Password:       creds.Password,
		IdentityType:   1,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerClientID, creds.ClientID).
		SetHeader(headerClientSecret, creds.ClientSecret).
		SetBody(body).
		Execute(http.MethodPost, s.baseURLs[APIIdentity]+"/token")
	if err != nil {
		return cachedToken{}, &delivery.TokenAcquisitionError{Err: err}
	}

	raw := resp.String()
	if !resp.IsSuccess() {
		return cachedToken{}, &delivery.TokenAcquisitionError{StatusCode: resp.StatusCode(), Body: raw}
	}

	var parsed tokenResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cachedToken{}, &delivery.TokenAcquisitionError{StatusCode: resp.StatusCode(), Body: raw, Err: err}
	}

	value := parsed.JWT
	if value == "" {
		value = parsed.Token
	}
	if value == "" {
		return cachedToken{}, &delivery.TokenAcquisitionError{StatusCode: resp.StatusCode(), Body: raw}
	}

	return cachedToken{
		value:     value,
		expiresAt: parseTokenExpiry(parsed.JWTExpireDate),
	}, nil
}

// parseTokenExpiry reads the carrier's fixed-width expiry string as a local
// timestamp. An absent or unparsable value yields a one-hour lifetime
// instead of an error.
func parseTokenExpiry(value string) time.Time {
	expiresAt, err := time.ParseInLocation(tokenExpireLayout, value, time.Local)
	if err != nil {
		if value != "" {
			log.Warn().Str("jwt_expire_date", value).Msg("unparsable token expiry, assuming one hour")
		}
		return time.Now().Add(fallbackTokenLifetime)
	}
	return expiresAt
}

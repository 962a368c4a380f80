package sendeo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/rs/zerolog/log"
)

const (
	headerClientID     = "x-ibm-client-id"
	headerClientSecret = "x-ibm-client-secret"
)

// call is the shared authenticated primitive behind every query, command and
// reference request. It attaches the target API's gateway credentials plus
// the cached bearer token and normalizes failures into the error taxonomy.
//
// Responses are never retried here: the carrier's write endpoints are not
// safe for blind retry.
func (s *Service) call(ctx context.Context, api API, method, path string, body interface{}) ([]byte, error) {
	creds, err := s.credentialsFor(api)
	if err != nil {
		return nil, err
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerClientID, creds.ClientID).
		SetHeader(headerClientSecret, creds.ClientSecret)

	token, err := s.bearerToken(ctx)
	if err != nil {
		// Write calls must not go out unauthenticated. Read-only calls may
		// proceed; the carrier will reject them itself if it insists on a
		// token for that endpoint.
		if api == APICommand {
			return nil, err
		}
		log.Warn().Err(err).Str("api", api.String()).Msg("proceeding without bearer token")
	} else {
		req.SetAuthToken(token)
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, s.baseURLs[api]+path)
	if err != nil {
		return nil, &delivery.TransportError{Err: err}
	}

	raw := resp.String()
	if !resp.IsSuccess() {
		return nil, &delivery.UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    extractUpstreamMessage([]byte(raw)),
			Body:       raw,
		}
	}

	return []byte(raw), nil
}

// upstreamMessageFields is the priority order of the places the carrier's
// APIs hide their error text. Each service nests it under a different key.
var upstreamMessageFields = []string{"detail", "message", "moreInformation"}

// extractUpstreamMessage pulls the most specific error text out of a carrier
// error payload, falling back to a generic message when nothing usable is
// present.
func extractUpstreamMessage(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, field := range upstreamMessageFields {
			if value, ok := payload[field].(string); ok && value != "" {
				return value
			}
		}
	}
	return "carrier request failed"
}

// IsRetryable reports whether an error from the gateway may succeed on a
// plain retry by the caller. Only transport-level and token-acquisition
// failures qualify.
func IsRetryable(err error) bool {
	var transportErr *delivery.TransportError
	var tokenErr *delivery.TokenAcquisitionError
	return errors.As(err, &transportErr) || errors.As(err, &tokenErr)
}

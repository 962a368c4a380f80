// Package sendeo implements the delivery.Provider contract against the
// Sendeo carrier's split API surface: a token-issuing identity service, a
// read-only query service, a write command service and a reference service
// for the carrier's own geographic code tables. Each of the four APIs sits
// behind its own API-gateway credential pair.
package sendeo

import (
	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/kargohub/sendeo-gateway/internal/geocode"
	"github.com/kargohub/sendeo-gateway/internal/util"
	"resty.dev/v3"
)

// API selects which of the carrier's four services a call targets.
type API int

const (
	APIIdentity API = iota
	APIQuery
	APICommand
	APIReference
)

func (a API) String() string {
	switch a {
	case APIIdentity:
		return "identity"
	case APIQuery:
		return "query"
	case APICommand:
		return "command"
	case APIReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Credentials is one API's bundle. ClientID/ClientSecret are the gateway
// pair every API needs; CustomerNumber/Password are only set on the
// identity bundle. Bundles are loaded once at startup and never mutated.
type Credentials struct {
	ClientID       string
	ClientSecret   string
	CustomerNumber string
	Password       string
}

// Service is the Sendeo carrier client. It owns the process-wide token
// cache; everything else is a pure function of the per-call inputs, so one
// Service is safe for concurrent use.
type Service struct {
	client   *resty.Client
	baseURLs map[API]string
	creds    map[API]Credentials
	resolver *geocode.Resolver
	tokens   tokenCache
}

// NewService wires a carrier client from configuration. Credential bundles
// are accepted as-is here; completeness is checked on first use per API.
func NewService(config *util.Config) *Service {
	service := &Service{
		client: resty.New(),
		baseURLs: map[API]string{
			APIIdentity:  config.SendeoIdentityBaseURL,
			APIQuery:     config.SendeoQueryBaseURL,
			APICommand:   config.SendeoCommandBaseURL,
			APIReference: config.SendeoReferenceBaseURL,
		},
		creds: map[API]Credentials{
			APIIdentity: {
				ClientID:       config.SendeoIdentityClientID,
				ClientSecret:   config.SendeoIdentityClientSecret,
				CustomerNumber: config.SendeoCustomerNumber,
				Password:       config.SendeoPassword,
			},
			APIQuery: {
				ClientID:     config.SendeoQueryClientID,
				ClientSecret: config.SendeoQueryClientSecret,
			},
			APICommand: {
				ClientID:     config.SendeoCommandClientID,
				ClientSecret: config.SendeoCommandClientSecret,
			},
			APIReference: {
				ClientID:     config.SendeoReferenceClientID,
				ClientSecret: config.SendeoReferenceClientSecret,
			},
		},
	}

	// The service itself serves live district lookups for the resolver.
	service.resolver = geocode.NewResolver(service, config.SendeoDefaultCityCode)

	return service
}

var _ delivery.Provider = (*Service)(nil)

// credentialsFor returns an API's bundle, validating it lazily. A missing
// required field surfaces as a ConfigurationError before any network call.
func (s *Service) credentialsFor(api API) (Credentials, error) {
	creds := s.creds[api]

	if creds.ClientID == "" {
		return creds, &delivery.ConfigurationError{API: api.String(), Field: "client id"}
	}
	if creds.ClientSecret == "" {
		return creds, &delivery.ConfigurationError{API: api.String(), Field: "client secret"}
	}
	if api == APIIdentity {
		if creds.CustomerNumber == "" {
			return creds, &delivery.ConfigurationError{API: api.String(), Field: "customer number"}
		}
		if creds.Password == "" {
			return creds, &delivery.ConfigurationError{API: api.String(), Field: "password"}
		}
	}

	return creds, nil
}

package sendeo

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kargohub/sendeo-gateway/internal/util"
)

// fakeCarrier is a set of httptest servers standing in for the carrier's
// four APIs, each counting how many requests it received.
type fakeCarrier struct {
	identity  *httptest.Server
	query     *httptest.Server
	command   *httptest.Server
	reference *httptest.Server

	identityCalls  atomic.Int64
	queryCalls     atomic.Int64
	commandCalls   atomic.Int64
	referenceCalls atomic.Int64
}

func newFakeCarrier(t *testing.T, identity, query, command, reference http.HandlerFunc) *fakeCarrier {
	t.Helper()

	carrier := &fakeCarrier{}

	wrap := func(counter *atomic.Int64, handler http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			if handler != nil {
				handler(w, r)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}

	carrier.identity = httptest.NewServer(wrap(&carrier.identityCalls, identity))
	carrier.query = httptest.NewServer(wrap(&carrier.queryCalls, query))
	carrier.command = httptest.NewServer(wrap(&carrier.commandCalls, command))
	carrier.reference = httptest.NewServer(wrap(&carrier.referenceCalls, reference))

	t.Cleanup(func() {
		carrier.identity.Close()
		carrier.query.Close()
		carrier.command.Close()
		carrier.reference.Close()
	})

	return carrier
}

func (f *fakeCarrier) config() *util.Config {
	return &util.Config{
		SendeoIdentityBaseURL:       f.identity.URL,
		SendeoQueryBaseURL:          f.query.URL,
		SendeoCommandBaseURL:        f.command.URL,
		SendeoReferenceBaseURL:      f.reference.URL,
		SendeoIdentityClientID:      "identity-client",
		SendeoIdentityClientSecret:  "identity-secret",
		SendeoCustomerNumber:        "100200",
		SendeoPassword:              "s3cret",
		SendeoQueryClientID:         "query-client",
		SendeoQueryClientSecret:     "query-secret",
		SendeoCommandClientID:       "command-client",
		SendeoCommandClientSecret:   "command-secret",
		SendeoReferenceClientID:     "reference-client",
		SendeoReferenceClientSecret: "reference-secret",
		SendeoDefaultCityCode:       34,
	}
}

func (f *fakeCarrier) service() *Service {
	return NewService(f.config())
}

// identityOK answers the token endpoint with a token valid for the given
// lifetime.
func identityOK(token string, lifetime time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expiry := time.Now().Add(lifetime).Format(tokenExpireLayout)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jwt":"` + token + `","jwtExpireDate":"` + expiry + `"}`))
	}
}

func identityFailing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"identity service down"}`))
	}
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

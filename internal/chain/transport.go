package chain

import (
	"net/http"

	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/ratelimiter"
)

const (
	AuthTypeHeader = "header"
	AuthTypeQuery  = "query"
)

// transport throttles node requests and attaches provider credentials.
type transport struct {
	base    http.RoundTripper
	auth    config.AuthConfig
	limiter *ratelimiter.RateLimiter
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	if t.auth.Type == "" || t.auth.Key == "" {
		return t.base.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	switch t.auth.Type {
	case AuthTypeHeader:
		req.Header.Set(t.auth.Key, t.auth.Value)
	case AuthTypeQuery:
		q := req.URL.Query()
		q.Set(t.auth.Key, t.auth.Value)
		req.URL.RawQuery = q.Encode()
	}
	return t.base.RoundTrip(req)
}

package controller

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// tokenExpiryBuffer is how long before an access token's real expiry it
// is treated as expired and refreshed.
const tokenExpiryBuffer = 60 * time.Second

// requestTimeout bounds every outbound call, the Yahoo GETs and the token
// refresh POST alike. Slack expects the webhook to answer within a few
// seconds, so nothing may block forever.
const requestTimeout = 10 * time.Second

// refreshTokenSource performs the refresh-token grant on every Token
// call. It deliberately does no caching of its own; the caching (and the
// expiry buffer) live in the reuse source wrapped around it, so there is
// exactly one place deciding when a refresh happens.
type refreshTokenSource struct {
	cfg          *oauth2.Config
	refreshToken string
	timeout      time.Duration
}

func (s *refreshTokenSource) Token() (*oauth2.Token, error) {
	// Hand oauth2 a client with a deadline for the refresh POST. Without
	// this it falls back to http.DefaultClient, which never times out.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: s.timeout})

	src := s.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: s.refreshToken})
	return src.Token()
}

// newAuthClient builds the http.Client used for all Yahoo API calls. The
// current access token is cached in process memory and refreshed through
// the refresh-token grant once it is within tokenExpiryBuffer of expiry.
// The reuse source serializes concurrent refreshes behind a mutex; that
// is an optimization over the otherwise benign last-write-wins race, not
// a correctness requirement.
func newAuthClient(cfg *oauth2.Config, refreshToken string) *http.Client {
	src := oauth2.ReuseTokenSourceWithExpiry(nil,
		&refreshTokenSource{cfg: cfg, refreshToken: refreshToken, timeout: requestTimeout},
		tokenExpiryBuffer)

	client := oauth2.NewClient(context.Background(), src)
	client.Timeout = requestTimeout
	return client
}

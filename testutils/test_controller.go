package testutils

import (
	"fmt"

	"golang.org/x/oauth2"
)

// TestController bundles the fake servers so controller and web tests can
// be wired up the same way main() wires production.
type TestController struct {
	YahooConfig *oauth2.Config
	Tokens      *FakeTokenServer
	fakeYahoo   *FakeYahooServer
}

func (c *TestController) Close() {
	c.fakeYahoo.Close()
	c.Tokens.Close()
}

func (c *TestController) YahooURL() string {
	return c.fakeYahoo.URL()
}

func NewTestController() *TestController {
	return NewTestControllerWithTokenExpiry(3600)
}

// NewTestControllerWithTokenExpiry lets a test pick how long the fake
// token endpoint's access tokens live, in seconds. A value at or below
// the refresh buffer makes every request refresh again.
func NewTestControllerWithTokenExpiry(expiresIn int) *TestController {
	tokens := NewFakeTokenServer(expiresIn)

	fakeYahooConfig := &oauth2.Config{
		ClientID:     "fakeClientID",
		ClientSecret: "fakeClientSecret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/auth", tokens.URL()),
			TokenURL: fmt.Sprintf("%s/token", tokens.URL()),
		},
	}

	return &TestController{
		YahooConfig: fakeYahooConfig,
		Tokens:      tokens,
		fakeYahoo:   NewFakeYahooServer(),
	}
}

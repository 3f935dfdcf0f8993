package helpers

import (
	"encoding/json"
	"testing"

	"apiserver/internal"
	"apiserver/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

// Client issues synthetic requests against its own app instance, built in
// testing mode. No network listener is involved.
//
// Every Client owns an independent app and config value, so tests holding
// separate clients can run in parallel. A Client belongs to the test that
// created it and is released when that test ends.
type Client struct {
	app *fiber.App
	cfg config.Config
}

// NewClient builds a fresh testing-mode config and app and returns a client
// bound to them. Call it at the top of the test body. Shutdown is registered
// with t.Cleanup, so the scope closes on every exit path — pass, fail, or
// Fatal inside the test.
func NewClient(t *testing.T) *Client {
	t.Helper()

	cfg := config.Test()
	app := internal.SetupApp(cfg)
	require.NotNil(t, app)

	t.Cleanup(func() {
		if err := app.Shutdown(); err != nil {
			t.Logf("app shutdown: %v", err)
		}
	})

	return &Client{app: app, cfg: cfg}
}

// Config returns the config value the client's app was built with.
func (c *Client) Config() config.Config {
	return c.cfg
}

func (c *Client) Get(t *testing.T, path string) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, c.app, "GET", path, nil)
}

func (c *Client) Post(t *testing.T, path string, payload any) (bodyBytes []byte, statusCode int) {
	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, c.app, "POST", path, sendBytes)
}

// Do sends raw bytes, for tests that need a malformed body.
func (c *Client) Do(t *testing.T, method string, path string, sendBytes []byte) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, c.app, method, path, sendBytes)
}

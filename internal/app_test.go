package internal

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"apiserver/internal/config"
	"apiserver/internal/errmsg"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func runRequest(t *testing.T, app *fiber.App, method string, path string) (message string, statusCode int) {
	t.Helper()

	res, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body struct {
		Message string `json:"message"`
	}
	// probe routes answer with plain text, error paths with JSON
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return string(bodyBytes), res.StatusCode
	}
	return body.Message, res.StatusCode
}

func failingApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
	})
	app.Get("/fail", func(c fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/teapot", func(c fiber.Ctx) error {
		return fiber.NewError(http.StatusTeapot, "short and stout")
	})
	return app
}

func TestErrorHandlerMasksUnexpectedErrors(t *testing.T) {
	app := failingApp(config.Config{Deployment: "prod", Version: "1.0.0"})

	message, statusCode := runRequest(t, app, "GET", "/fail")

	require.Equal(t, http.StatusInternalServerError, statusCode)
	require.Equal(t, "internal server error", message)
}

func TestErrorHandlerPropagatesInTestingMode(t *testing.T) {
	app := failingApp(config.Test())

	message, statusCode := runRequest(t, app, "GET", "/fail")

	require.Equal(t, http.StatusInternalServerError, statusCode)
	require.Equal(t, "boom", message)
}

func TestErrorHandlerKeepsFiberErrors(t *testing.T) {
	for _, cfg := range []config.Config{config.Test(), {Deployment: "prod"}} {
		app := failingApp(cfg)

		message, statusCode := runRequest(t, app, "GET", "/teapot")

		require.Equal(t, http.StatusTeapot, statusCode)
		require.Equal(t, "short and stout", message)
	}
}

func TestErrorHandlerKeepsStatusErrors(t *testing.T) {
	app := SetupApp(config.Config{Deployment: "prod", Version: "1.0.0"})

	message, statusCode := runRequest(t, app, "GET", "/missing")

	require.Equal(t, errmsg.RouteNotFound.StatusCode, statusCode)
	require.Equal(t, errmsg.RouteNotFound.Message, message)
}

func TestSetupAppProbeRoutes(t *testing.T) {
	app := SetupApp(config.Config{Version: "1.0.0"})

	message, statusCode := runRequest(t, app, "GET", "/ping")
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "PONG", message)

	message, statusCode = runRequest(t, app, "GET", "/version")
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "v1.0.0", message)
}

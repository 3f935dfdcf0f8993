package internal

import (
	"encoding/json"
	"errors"
	"log"

	"apiserver/internal/config"
	"apiserver/internal/errmsg"
	"apiserver/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// SetupApp builds the fiber app from an already-constructed config. It has
// no side effects of its own, so a testing-mode config yields an app that is
// safe to build once per test.
func SetupApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
	})

	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	app.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + cfg.Version)
	})

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": cfg.Version,
			"testing": cfg.Testing,
		})
	})

	app.Post("/echo", echoHandler)

	// unmatched routes go through the error handler like everything else
	app.Use(func(c fiber.Ctx) error {
		return errmsg.RouteNotFound
	})

	return app
}

func echoHandler(c fiber.Ctx) error {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return errmsg.EchoInvalidPayload
	}
	return c.JSON(payload)
}

// errorHandler is the single place errors become responses. In testing mode
// unexpected faults surface verbatim to the caller; otherwise they are logged
// and masked as a generic 500.
func errorHandler(cfg config.Config) func(c fiber.Ctx, err error) error {
	return func(c fiber.Ctx, err error) error {
		var se errmsg.StatusError
		if errors.As(err, &se) {
			return utils.StatusError(c, se)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.Error(c, fe.Code, fe)
		}

		if cfg.Testing {
			return utils.Error(c, fiber.StatusInternalServerError, err)
		}

		log.Printf("unhandled error: %v", err)
		return utils.StatusError(c, errmsg.NewStatusError(
			fiber.StatusInternalServerError,
			"internal server error",
		))
	}
}

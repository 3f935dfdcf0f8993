package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"apiserver/internal"
	"apiserver/internal/config"

	"github.com/gofiber/fiber/v3"
)

func main() {
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		log.Fatal("port is required")
	}

	cfg, err := config.Load(*envRoot, *appVersion)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := internal.SetupApp(cfg)

	fmt.Println("APP VERSION:", cfg.Version)

	if err := app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork: cfg.Prefork,
	}); err != nil {
		log.Fatalf("Error listening on port %s: %v", port, err)
	}
}

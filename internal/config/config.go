package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the app needs to start. It is a plain value:
// build one, pass it to SetupApp, never mutate it afterwards. Tests get
// their own value from Test, so two suites never share config state.
type Config struct {
	Deployment string
	Version    string
	Testing    bool
	Prefork    bool
}

// Load builds the config for a real deployment. It overlays the .env file
// from envRoot (repo root when empty) onto the process environment and
// resolves the version from the VERSION file unless appVersion overrides it.
func Load(envRoot string, appVersion string) (Config, error) {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	envPath := path.Join(envRoot, ".env")
	if err := godotenv.Overload(envPath); err != nil {
		return Config{}, fmt.Errorf("failed to load env file %s: %w", envPath, err)
	}

	version, err := loadVersion(appVersion)
	if err != nil {
		return Config{}, err
	}

	prefork, _ := strconv.ParseBool(os.Getenv("PREFORK"))

	return Config{
		Deployment: strings.TrimSpace(os.Getenv("DEPLOYMENT")),
		Version:    version,
		Prefork:    prefork,
	}, nil
}

// Test builds a fresh testing-mode config. It touches no env files and no
// process environment, so every call yields the same deterministic value.
func Test() Config {
	return Config{
		Deployment: "test",
		Version:    "0.0.0-test",
		Testing:    true,
	}
}

func loadVersion(appVersion string) (string, error) {
	if appVersion != "" {
		return appVersion, nil
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		return "", fmt.Errorf("failed to read version file from repo root: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "unknown", nil
	}
	return trimmed, nil
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}

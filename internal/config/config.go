package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort        = 3001
	defaultFrontendURL = "http://localhost:5173"

	// DefaultAPIBaseURL is the placeholder shipped with the dashboard
	// build. A deployment that points API_BASE_URL anywhere else is
	// presumed to have a real billing backend behind it.
	DefaultAPIBaseURL = "http://localhost:3001/api"
)

// DemoOrganizationID scopes every entity query in this build. There is no
// session layer binding a request to an organization yet, so all reads and
// writes run against the demo tenant.
const DemoOrganizationID = "550e8400-e29b-41d4-a716-446655440000"

// Config holds every knob the server reads from the environment. It is
// resolved once in main and threaded through constructors; nothing
// re-reads the environment after startup.
type Config struct {
	Environment string
	Port        int
	FrontendURL string

	// ExtraCORSOrigins is a comma-separated allowlist on top of the
	// frontend URL and the local dev servers.
	ExtraCORSOrigins string

	DatabaseURL        string
	DatabaseServiceKey string

	StripePublishableKey string
	APIBaseURL           string
}

func Load() *Config {
	return &Config{
		Environment:          getEnv("APP_ENV", "development"),
		Port:                 parseIntEnv("PORT", defaultPort),
		FrontendURL:          getEnv("FRONTEND_URL", defaultFrontendURL),
		ExtraCORSOrigins:     strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DatabaseURL:          strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabaseServiceKey:   strings.TrimSpace(os.Getenv("DATABASE_SERVICE_KEY")),
		StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", "pk_test_your_key_here"),
		APIBaseURL:           getEnv("API_BASE_URL", DefaultAPIBaseURL),
	}
}

// DatastoreConfigured reports whether both connection parameters are
// present. Either one missing means the server runs in mock mode with
// fixed in-memory data.
func (c *Config) DatastoreConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseServiceKey != ""
}

// BillingBackendAvailable is the capability gate for billing actions:
// true only when the API base URL differs from the default placeholder.
// Decided once at startup; a backend appearing mid-session is not detected.
func (c *Config) BillingBackendAvailable() bool {
	return c.APIBaseURL != "" && c.APIBaseURL != DefaultAPIBaseURL
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(name string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

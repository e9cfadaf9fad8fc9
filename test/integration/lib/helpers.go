package lib

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdklib "github.com/tavor-dev/tavor-go/pkg/lib"
	sdklog "github.com/tavor-dev/tavor-go/pkg/lib/log"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	APIKey  string
	BaseURL string
}

func (c *Config) defaults() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key is required (TAVOR_API_KEY)")
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TAVOR_INTEGRATION"
		envAPIKey     = "TAVOR_API_KEY"
		envBaseURL    = "TAVOR_BASE_URL"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		APIKey:  os.Getenv(envAPIKey),
		BaseURL: os.Getenv(envBaseURL),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// NewTestClient creates an SDK client against the real box service.
func NewTestClient(t *testing.T, config Config) *sdklib.Client {
	t.Helper()

	client, err := sdklib.New(sdklib.Config{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
		MaxWait: 3 * time.Minute,
		Logger:  sdklog.Noop,
	})
	require.NoError(t, err)

	return client
}

// UniqueTag generates a unique metadata value for test isolation.
func UniqueTag(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupBox registers a cleanup function that stops a box.
func CleanupBox(t *testing.T, box *sdklib.BoxHandle) {
	t.Helper()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		// Best effort cleanup.
		_ = box.Stop(ctx)
	})
}

package config

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/tavor-dev/tavor-go/internal/conventions"
	"github.com/tavor-dev/tavor-go/internal/model"
)

// Env is the configuration that can be sourced from the environment.
type Env struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.tavor.dev"`
	// BoxTimeout is kept raw, it is only parsed when no explicit box timeout is set.
	BoxTimeout string `envconfig:"BOX_TIMEOUT"`
}

// EnvLoader loads the environment configuration.
type EnvLoader func() (Env, error)

// LoadEnv loads the configuration from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(conventions.EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("could not load environment: %w", err)
	}
	return env, nil
}

// NoEnv is an EnvLoader that ignores the environment.
func NoEnv() (Env, error) {
	return Env{BaseURL: conventions.DefaultBaseURL}, nil
}

// Explicit is the configuration set by the caller, it always wins over the environment.
type Explicit struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	// BoxTimeout is the default box lifetime in seconds, 0 means unset.
	BoxTimeout int
	HTTPClient *http.Client
}

// Resolved is the immutable configuration shared by the client and its box handles.
type Resolved struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	BoxTimeout     int
	// BoxTimeoutErr is set when the environment box timeout is malformed and no explicit
	// one was given. Only the operations that need a default box timeout fail with it.
	BoxTimeoutErr error
	HTTPClient    *http.Client
}

// Resolve merges explicit values, the environment and the defaults.
func Resolve(explicit Explicit, loadEnv EnvLoader) (Resolved, error) {
	if loadEnv == nil {
		loadEnv = LoadEnv
	}

	env, err := loadEnv()
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %w", err, model.ErrNotValid)
	}

	r := Resolved{
		APIKey:         firstNonEmpty(explicit.APIKey, env.APIKey),
		BaseURL:        firstNonEmpty(explicit.BaseURL, env.BaseURL, conventions.DefaultBaseURL),
		RequestTimeout: explicit.RequestTimeout,
		BoxTimeout:     explicit.BoxTimeout,
		HTTPClient:     explicit.HTTPClient,
	}

	if r.BoxTimeout <= 0 && env.BoxTimeout != "" {
		timeout, err := strconv.Atoi(env.BoxTimeout)
		if err != nil {
			r.BoxTimeoutErr = fmt.Errorf("invalid %s value %q: %w", conventions.EnvBoxTimeout, env.BoxTimeout, model.ErrNotValid)
		}
		r.BoxTimeout = timeout
	}

	if r.APIKey == "" {
		return Resolved{}, fmt.Errorf("api key is required, set it via config or %s environment variable: %w", conventions.EnvAPIKey, model.ErrAuthentication)
	}

	if r.RequestTimeout <= 0 {
		r.RequestTimeout = conventions.DefaultRequestTimeout
	}

	if r.BoxTimeout <= 0 {
		r.BoxTimeout = conventions.DefaultBoxTimeout
	}

	if r.HTTPClient == nil {
		r.HTTPClient = &http.Client{}
	}

	return r, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oklog/ulid/v2"

	"github.com/tavor-dev/tavor-go/internal/conventions"
	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

var _ remote.Repository = &Repository{}

// RepositoryConfig is the configuration for the HTTP box service repository.
type RepositoryConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	// HTTPClient is the underlying transport, it can be shared between repositories.
	// It is copied, never modified.
	HTTPClient *http.Client
	UserAgent  string
	Logger     log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}

	if c.APIKey == "" {
		return fmt.Errorf("api key is required: %w", model.ErrAuthentication)
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = conventions.DefaultRequestTimeout
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}

	if c.UserAgent == "" {
		c.UserAgent = "tavor-go"
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "remote.API"})

	return nil
}

// Repository talks to the box service over HTTP.
// It is safe for concurrent use.
type Repository struct {
	client  *resty.Client
	timeout time.Duration
	logger  log.Logger
}

// NewRepository returns a new HTTP box service repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// resty sets its own transport on a client without one, the caller's client is left untouched.
	hc := *cfg.HTTPClient
	logger := cfg.Logger
	client := resty.NewWithClient(&hc).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader(conventions.HeaderAPIKey, cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", cfg.UserAgent).
		SetLogger(restyLogger{logger: logger}).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(conventions.HeaderRequestID, ulid.Make().String())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
			logger.Debugf("%s %s: %d (%s)", r.Request.Method, r.Request.URL, r.StatusCode(), r.Time())
			return nil
		})

	return &Repository{
		client:  client,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

type createBoxResponse struct {
	ID string `json:"id"`
}

type listBoxesResponse struct {
	Data []model.Box `json:"data"`
}

func (r *Repository) CreateBox(ctx context.Context, cfg model.BoxConfig) (string, error) {
	var out createBoxResponse
	if err := r.do(ctx, http.MethodPost, conventions.BoxesPath, cfg, &out); err != nil {
		return "", err
	}

	if out.ID == "" {
		return "", &model.APIError{
			Method:     http.MethodPost,
			Path:       conventions.BoxesPath,
			StatusCode: http.StatusOK,
			Message:    "missing box id in response",
			Kind:       model.ErrRemoteService,
		}
	}

	return out.ID, nil
}

func (r *Repository) ListBoxes(ctx context.Context) ([]model.Box, error) {
	var out listBoxesResponse
	if err := r.do(ctx, http.MethodGet, conventions.BoxesPath, nil, &out); err != nil {
		return nil, err
	}

	if out.Data == nil {
		return []model.Box{}, nil
	}

	return out.Data, nil
}

func (r *Repository) GetBox(ctx context.Context, id string) (*model.Box, error) {
	var out model.Box
	if err := r.do(ctx, http.MethodGet, conventions.BoxPath(id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *Repository) DeleteBox(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, conventions.BoxPath(id), nil, nil)
}

// do executes a request, every failure leaves this method mapped into the model error taxonomy.
func (r *Repository) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req := r.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &model.TransportError{Method: method, Path: path, Err: err}
	}

	if !resp.IsSuccess() {
		return mapResponseError(method, path, resp.StatusCode(), resp.Body())
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &model.APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("invalid response body: %s", err),
			Body:       resp.Body(),
			Kind:       model.ErrRemoteService,
		}
	}

	return nil
}

type restyLogger struct {
	logger log.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Errorf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warningf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debugf(format, v...) }

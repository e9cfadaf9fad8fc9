package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote/api"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// testServer records every request and replies with a fixed status and body.
type testServer struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (s *testServer) handler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: b})
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *testServer) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest{}, s.requests...)
}

func newRepository(t *testing.T, url string) *api.Repository {
	t.Helper()

	repo, err := api.NewRepository(api.RepositoryConfig{
		BaseURL:        url,
		APIKey:         "sk-test",
		RequestTimeout: 2 * time.Second,
	})
	require.NoError(t, err)

	return repo
}

func intPtr(i int) *int { return &i }

func TestNewRepository(t *testing.T) {
	tests := map[string]struct {
		config api.RepositoryConfig
		expErr bool
		expIs  error
	}{
		"A valid config should create the repository.": {
			config: api.RepositoryConfig{BaseURL: "http://localhost", APIKey: "k"},
		},
		"A missing base URL should fail.": {
			config: api.RepositoryConfig{APIKey: "k"},
			expErr: true,
		},
		"A missing api key should fail with an authentication error.": {
			config: api.RepositoryConfig{BaseURL: "http://localhost"},
			expErr: true,
			expIs:  model.ErrAuthentication,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			repo, err := api.NewRepository(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(repo)
				if test.expIs != nil {
					require.ErrorIs(err, test.expIs)
				}
				return
			}
			require.NoError(err)
			require.NotNil(repo)
		})
	}
}

func TestNewRepositoryKeepsHTTPClient(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ts := &testServer{}
	srv := httptest.NewServer(ts.handler(http.StatusOK, `{"id":"box-1","status":"running"}`))
	defer srv.Close()

	hc := &http.Client{}
	repo, err := api.NewRepository(api.RepositoryConfig{BaseURL: srv.URL, APIKey: "sk-test", HTTPClient: hc})
	require.NoError(err)

	_, err = repo.GetBox(context.Background(), "box-1")
	require.NoError(err)

	assert.Nil(hc.Transport)
	assert.Nil(hc.Jar)
	assert.Zero(hc.Timeout)
	assert.Len(ts.recorded(), 1)
}

func TestRepositoryCreateBox(t *testing.T) {
	tests := map[string]struct {
		cfg     model.BoxConfig
		status  int
		resp    string
		expBody map[string]any
		expID   string
		expErr  error
	}{
		"An empty config should send an empty body.": {
			cfg:     model.BoxConfig{},
			status:  http.StatusCreated,
			resp:    `{"id":"box-1"}`,
			expBody: map[string]any{},
			expID:   "box-1",
		},

		"Only the set fields should be sent.": {
			cfg:     model.BoxConfig{CPU: intPtr(2)},
			status:  http.StatusOK,
			resp:    `{"id":"box-2"}`,
			expBody: map[string]any{"cpu": float64(2)},
			expID:   "box-2",
		},

		"All the fields should be sent when set.": {
			cfg: model.BoxConfig{
				Timeout:  intPtr(600),
				Metadata: map[string]any{"team": "infra"},
				CPU:      intPtr(1),
				MiBRAM:   intPtr(1024),
			},
			status: http.StatusOK,
			resp:   `{"id":"box-3"}`,
			expBody: map[string]any{
				"timeout":  float64(600),
				"metadata": map[string]any{"team": "infra"},
				"cpu":      float64(1),
				"mib_ram":  float64(1024),
			},
			expID: "box-3",
		},

		"An empty metadata map should be sent.": {
			cfg:     model.BoxConfig{Metadata: map[string]any{}},
			status:  http.StatusOK,
			resp:    `{"id":"box-5"}`,
			expBody: map[string]any{"metadata": map[string]any{}},
			expID:   "box-5",
		},

		"Explicit zero values should be sent.": {
			cfg:     model.BoxConfig{Timeout: intPtr(0)},
			status:  http.StatusOK,
			resp:    `{"id":"box-4"}`,
			expBody: map[string]any{"timeout": float64(0)},
			expID:   "box-4",
		},

		"A response without id should fail.": {
			status: http.StatusOK,
			resp:   `{}`,
			expErr: model.ErrRemoteService,
		},

		"A validation error should be mapped.": {
			cfg:    model.BoxConfig{CPU: intPtr(-1)},
			status: http.StatusBadRequest,
			resp:   `{"error":"cpu must be positive"}`,
			expErr: model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ts := &testServer{}
			srv := httptest.NewServer(ts.handler(test.status, test.resp))
			defer srv.Close()

			id, err := newRepository(t, srv.URL).CreateBox(context.Background(), test.cfg)

			reqs := ts.recorded()
			require.Len(reqs, 1)
			req := reqs[0]
			assert.Equal(http.MethodPost, req.Method)
			assert.Equal("/api/v2/boxes", req.Path)
			assert.Equal("sk-test", req.Header.Get("x-api-key"))
			assert.NotEmpty(req.Header.Get("X-Request-Id"))

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			require.NoError(err)
			assert.Equal(test.expID, id)

			var gotBody map[string]any
			require.NoError(json.Unmarshal(req.Body, &gotBody))
			assert.Equal(test.expBody, gotBody)
		})
	}
}

func TestRepositoryListBoxes(t *testing.T) {
	tests := map[string]struct {
		status   int
		resp     string
		expBoxes []model.Box
		expErr   error
	}{
		"Listing should return the service data verbatim.": {
			status: http.StatusOK,
			resp:   `{"data":[{"id":"b1","status":"running","metadata":{"k":"v"},"cpu":2,"created_at":"2026-01-30T10:00:00Z"},{"id":"b2","status":"queued","created_at":"2026-01-30T10:00:05Z"}]}`,
			expBoxes: []model.Box{
				{ID: "b1", Status: model.BoxStatusRunning, Metadata: map[string]any{"k": "v"}, CPU: intPtr(2), CreatedAt: time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC)},
				{ID: "b2", Status: model.BoxStatusQueued, CreatedAt: time.Date(2026, 1, 30, 10, 0, 5, 0, time.UTC)},
			},
		},

		"An empty list should return no boxes.": {
			status:   http.StatusOK,
			resp:     `{"data":[]}`,
			expBoxes: []model.Box{},
		},

		"A missing data field should return no boxes.": {
			status:   http.StatusOK,
			resp:     `{}`,
			expBoxes: []model.Box{},
		},

		"An invalid body should fail with a remote service error.": {
			status: http.StatusOK,
			resp:   `not json`,
			expErr: model.ErrRemoteService,
		},

		"A rejected credential should fail with an authentication error.": {
			status: http.StatusUnauthorized,
			resp:   `{"error":"invalid api key"}`,
			expErr: model.ErrAuthentication,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ts := &testServer{}
			srv := httptest.NewServer(ts.handler(test.status, test.resp))
			defer srv.Close()

			boxes, err := newRepository(t, srv.URL).ListBoxes(context.Background())

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			require.NoError(err)
			assert.Equal(test.expBoxes, boxes)
			reqs := ts.recorded()
			require.Len(reqs, 1)
			assert.Equal(http.MethodGet, reqs[0].Method)
			assert.Equal("/api/v2/boxes", reqs[0].Path)
		})
	}
}

func TestRepositoryGetAndDeleteBox(t *testing.T) {
	tests := map[string]struct {
		call      func(repo *api.Repository) error
		status    int
		resp      string
		expMethod string
		expPath   string
		expErr    error
		expMsg    string
	}{
		"Getting a box should return its status.": {
			call: func(repo *api.Repository) error {
				b, err := repo.GetBox(context.Background(), "b1")
				if err == nil && b.Status != model.BoxStatusBooting {
					return assert.AnError
				}
				return err
			},
			status:    http.StatusOK,
			resp:      `{"id":"b1","status":"booting"}`,
			expMethod: http.MethodGet,
			expPath:   "/api/v2/boxes/b1",
		},

		"Getting an unknown box should fail with not found and keep the message.": {
			call: func(repo *api.Repository) error {
				_, err := repo.GetBox(context.Background(), "nope")
				return err
			},
			status:    http.StatusNotFound,
			resp:      `{"error":"box nope not found"}`,
			expMethod: http.MethodGet,
			expPath:   "/api/v2/boxes/nope",
			expErr:    model.ErrNotFound,
			expMsg:    "box nope not found",
		},

		"Deleting a box should work.": {
			call: func(repo *api.Repository) error {
				return repo.DeleteBox(context.Background(), "b1")
			},
			status:    http.StatusNoContent,
			expMethod: http.MethodDelete,
			expPath:   "/api/v2/boxes/b1",
		},

		"Deleting a box on a failing service should fail with a remote service error.": {
			call: func(repo *api.Repository) error {
				return repo.DeleteBox(context.Background(), "b1")
			},
			status:    http.StatusInternalServerError,
			resp:      `{"error":"database unavailable"}`,
			expMethod: http.MethodDelete,
			expPath:   "/api/v2/boxes/b1",
			expErr:    model.ErrRemoteService,
			expMsg:    "database unavailable",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ts := &testServer{}
			srv := httptest.NewServer(ts.handler(test.status, test.resp))
			defer srv.Close()

			err := test.call(newRepository(t, srv.URL))

			reqs := ts.recorded()
			require.Len(reqs, 1)
			assert.Equal(test.expMethod, reqs[0].Method)
			assert.Equal(test.expPath, reqs[0].Path)

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				var apiErr *model.APIError
				require.ErrorAs(err, &apiErr)
				assert.Equal(test.expMsg, apiErr.Message)
				assert.Equal(test.resp, string(apiErr.Body))
				return
			}
			assert.NoError(err)
		})
	}
}

func TestRepositoryTransportErrors(t *testing.T) {
	t.Run("An unreachable service should fail with a transport error.", func(t *testing.T) {
		assert := assert.New(t)

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newRepository(t, url).GetBox(context.Background(), "b1")

		assert.ErrorIs(err, model.ErrTransport)
		assert.NotErrorIs(err, model.ErrNotFound)
		var tErr *model.TransportError
		assert.ErrorAs(err, &tErr)
	})

	t.Run("A request exceeding the request timeout should fail with a transport error.", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		repo, err := api.NewRepository(api.RepositoryConfig{
			BaseURL:        srv.URL,
			APIKey:         "sk-test",
			RequestTimeout: 50 * time.Millisecond,
		})
		require.NoError(err)

		_, err = repo.ListBoxes(context.Background())

		assert.ErrorIs(err, model.ErrTransport)
		assert.ErrorIs(err, context.DeadlineExceeded)
	})

	t.Run("A canceled context should fail with a transport error.", func(t *testing.T) {
		assert := assert.New(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newRepository(t, srv.URL).DeleteBox(ctx, "b1")

		assert.ErrorIs(err, model.ErrTransport)
		assert.ErrorIs(err, context.Canceled)
	})
}

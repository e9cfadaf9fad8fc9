package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavor-dev/tavor-go/internal/model"
)

func TestMapResponseError(t *testing.T) {
	tests := map[string]struct {
		statusCode int
		body       string
		expKind    error
		expMessage string
	}{
		"A 401 should be an authentication error.": {
			statusCode: http.StatusUnauthorized,
			body:       `{"error":"invalid api key"}`,
			expKind:    model.ErrAuthentication,
			expMessage: "invalid api key",
		},
		"A 403 should be an authentication error.": {
			statusCode: http.StatusForbidden,
			body:       `{"message":"forbidden box"}`,
			expKind:    model.ErrAuthentication,
			expMessage: "forbidden box",
		},
		"A 404 should be a not found error.": {
			statusCode: http.StatusNotFound,
			body:       `{"error":"box not found"}`,
			expKind:    model.ErrNotFound,
			expMessage: "box not found",
		},
		"A 400 should be a validation error.": {
			statusCode: http.StatusBadRequest,
			body:       `{"error":"cpu must be positive"}`,
			expKind:    model.ErrNotValid,
			expMessage: "cpu must be positive",
		},
		"A 422 should be a validation error.": {
			statusCode: http.StatusUnprocessableEntity,
			body:       ``,
			expKind:    model.ErrNotValid,
			expMessage: "Unprocessable Entity",
		},
		"A 500 should be a remote service error.": {
			statusCode: http.StatusInternalServerError,
			body:       `upstream exploded`,
			expKind:    model.ErrRemoteService,
			expMessage: "upstream exploded",
		},
		"A 503 with an unknown JSON body should use the status text.": {
			statusCode: http.StatusServiceUnavailable,
			body:       `{"code":42}`,
			expKind:    model.ErrRemoteService,
			expMessage: "Service Unavailable",
		},
		"A 3xx should be a remote service error.": {
			statusCode: http.StatusNotModified,
			expKind:    model.ErrRemoteService,
			expMessage: "Not Modified",
		},
		"A long raw body should be truncated in the message.": {
			statusCode: http.StatusBadGateway,
			body:       strings.Repeat("x", 600),
			expKind:    model.ErrRemoteService,
			expMessage: strings.Repeat("x", 512) + "...",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			err := mapResponseError(http.MethodGet, "/api/v2/boxes/b1", test.statusCode, []byte(test.body))

			assert.ErrorIs(err, test.expKind)
			var apiErr *model.APIError
			if assert.ErrorAs(err, &apiErr) {
				assert.Equal(test.statusCode, apiErr.StatusCode)
				assert.Equal(test.expMessage, apiErr.Message)
				assert.Equal(test.body, string(apiErr.Body))
			}
		})
	}
}

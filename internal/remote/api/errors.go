package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tavor-dev/tavor-go/internal/model"
)

const maxRawMessageLen = 512

// mapResponseError maps a non successful HTTP response into the model error taxonomy.
func mapResponseError(method, path string, statusCode int, body []byte) error {
	return &model.APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    responseMessage(statusCode, body),
		Body:       body,
		Kind:       errorKind(statusCode),
	}
}

func errorKind(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return model.ErrAuthentication
	case statusCode == http.StatusNotFound:
		return model.ErrNotFound
	case statusCode >= 400 && statusCode < 500:
		return model.ErrNotValid
	default:
		return model.ErrRemoteService
	}
}

// responseMessage gets the service message from the `error` or `message` JSON fields,
// falls back to the raw body and then to the status text.
func responseMessage(statusCode int, body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}

	raw := strings.TrimSpace(string(body))
	if raw != "" && !strings.HasPrefix(raw, "{") {
		if len(raw) > maxRawMessageLen {
			raw = raw[:maxRawMessageLen] + "..."
		}
		return raw
	}

	return http.StatusText(statusCode)
}

package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAuthExpired indicates the session could not be recovered: the access
// token expired and the refresh attempt failed (or the retried request was
// rejected again). The session state has already been cleared when this is
// returned.
var ErrAuthExpired = errors.New("authentication expired")

// APIError is a failure response from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// AuthExpired reports whether the response means the access token is no
// longer valid. Invalid credentials on login are a plain failure, not an
// expired session.
func (e *APIError) AuthExpired() bool {
	return e.Status == http.StatusUnauthorized && e.Code != "INVALID_CREDENTIALS"
}

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *wireError      `json:"error"`
}

// decodeError turns an error response body into an *APIError, preferring
// the server's envelope message, then the raw body text, then a generic
// message.
func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		return apiErr
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
	"github.com/ovpn-tools/ovpncheck/pkg/serializer"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code      errors.Code `json:"code" yaml:"code"`
	Message   string      `json:"message" yaml:"message"`
	RequestID string      `json:"requestId" yaml:"requestId"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
	Retryable bool        `json:"retryable" yaml:"retryable"`
}

// WriteError writes an error response with the request's ID attached.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.Code, message string, retryable bool) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

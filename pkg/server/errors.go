package server

import (
	stderrors "errors"
	"net/http"
	"time"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"github.com/factorlab/craftbench/pkg/serializer"
	"github.com/google/uuid"
)

// statusForCode maps structured error codes to HTTP status codes.
func statusForCode(code cberrors.ErrorCode) int {
	switch code {
	case cberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cberrors.ErrCodeInvalidChoice, cberrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a structured error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeStructuredError maps an evaluation error onto the HTTP surface,
// preserving its code and context fields.
func (s *Server) writeStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	code := cberrors.CodeOf(err)
	status := statusForCode(code)

	var details map[string]any
	var serr *cberrors.StructuredError
	if stderrors.As(err, &serr) && len(serr.Context) > 0 {
		details = serr.Context
	}

	retryable := status == http.StatusInternalServerError || status == http.StatusServiceUnavailable
	s.writeError(w, r, status, code, err.Error(), retryable, details)
}

package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/heartmarshall/yuhuh-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string         `json:"error"`
	Details []fieldMessage `json:"details,omitempty"`
}

type fieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a service error to a status code and JSON body.
// Internal causes are logged and never echoed to the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		stepErr   *domain.StepError
		fieldsErr *domain.ValidationError
	)
	switch {
	case errors.As(err, &stepErr):
		log.ErrorContext(r.Context(), "step failed", slog.String("error", err.Error()), slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, stepErr.Context)
	case errors.Is(err, domain.ErrDatabase):
		log.ErrorContext(r.Context(), "database error", slog.String("error", err.Error()), slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal error occurred")
	case errors.As(err, &fieldsErr):
		resp := errorResponse{Error: fieldsErr.Error()}
		if len(fieldsErr.Errors) == 1 {
			resp.Error = fieldsErr.Errors[0].Field + ": " + fieldsErr.Errors[0].Message
		}
		for _, fe := range fieldsErr.Errors {
			resp.Details = append(resp.Details, fieldMessage{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()), slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal error occurred")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a bounded JSON body into dst. Rating bound violations
// keep their message; any other malformed body is reported generically.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "empty request body")
		}
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// notFound is the fallback for unmatched routes.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "no matching route found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

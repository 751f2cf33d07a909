package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

const msgValidationFailed = "Validation failed"

// writeInvalidPayload answers a body that is not valid JSON.
func writeInvalidPayload(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, sdk.ErrorResponse{Error: "Invalid payload"})
}

// writeServiceError maps a service or validation error to its HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErrs httpx.FieldErrors
		verr      *service.ValidationError
	)

	switch {
	case errors.As(err, &fieldErrs):
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.ErrorResponse{Error: msgValidationFailed, Details: fieldErrs})
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.ErrorResponse{
			Error:   msgValidationFailed,
			Details: map[string]string{verr.Field: verr.Message},
		})

	case errors.Is(err, service.ErrInvalidPayload):
		writeInvalidPayload(w)
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid token")
	case errors.Is(err, service.ErrTokenAlreadyUsed):
		httpx.WriteError(w, http.StatusBadRequest, "Token already used")
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, http.StatusBadRequest, "Token expired")

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "Forbidden")

	case errors.Is(err, service.ErrProjectNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrFindingNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Finding not found")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not found")

	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrProjectExists):
		httpx.WriteError(w, http.StatusConflict, "Project already exists")
	case errors.Is(err, service.ErrFindingNotOpen):
		httpx.WriteError(w, http.StatusConflict, "Finding is not open")

	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

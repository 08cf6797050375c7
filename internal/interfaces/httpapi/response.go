package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fightcard/internal/usecase"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fightcard"

	// Upstream scrapes are retried on a short backoff, so clients are told
	// to come back soon rather than hammer a dead source.
	unavailableRetryAfterSeconds = 30
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// mappedError describes how a usecase sentinel is rendered. A non-empty
// PublicMessage replaces the error text, which may name upstream hosts.
type mappedError struct {
	HTTPStatus    int
	Reason        string
	Status        string
	PublicMessage string
}

var internalError = mappedError{
	HTTPStatus:    http.StatusInternalServerError,
	Reason:        "internalError",
	Status:        "INTERNAL",
	PublicMessage: "internal server error",
}

var errorMappings = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
	{usecase.ErrUnauthorized, mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"}},
	{usecase.ErrDependencyUnavailable, mappedError{
		HTTPStatus:    http.StatusServiceUnavailable,
		Reason:        "dependencyUnavailable",
		Status:        "UNAVAILABLE",
		PublicMessage: "fight data is temporarily unavailable",
	}},
}

func mapError(err error) mappedError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError renders err in the error envelope. Server-side failures are
// recorded on the active span and never leak their text.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)

	message := err.Error()
	if mapped.PublicMessage != "" {
		message = mapped.PublicMessage
	}
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, mapped.Reason)
		w.Header().Set("Cache-Control", "no-store")
	}
	if mapped.HTTPStatus == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(unavailableRetryAfterSeconds))
	}

	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  mapped.Reason,
				Message: message,
			}},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New("unrecovered handler failure"))
}

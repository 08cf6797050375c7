package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fightcard/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid", err: fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: event=ufc-999", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "unavailable", err: fmt.Errorf("%w: load dataset", usecase.ErrDependencyUnavailable), status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{name: "unknown", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError()=%d/%s want=%d/%s", got.HTTPStatus, got.Reason, tt.status, tt.reason)
			}
		})
	}
}

func TestWriteError_UnavailableHidesUpstream(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: load dataset: GET https://scraper.internal/ufc.json: status=502", usecase.ErrDependencyUnavailable))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("expected Retry-After=30, got %q", got)
	}
	if strings.Contains(rec.Body.String(), "scraper.internal") {
		t.Fatalf("upstream detail leaked: %s", rec.Body.String())
	}
}

package httpapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-league/internal/projection"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "sleeper-league"
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

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

// writeTable renders a projection table as JSON, CSV or parquet.
func writeTable(ctx context.Context, w http.ResponseWriter, format string, table *projection.Table) {
	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case projection.FormatCSV:
		err = projection.WriteCSV(&buf, table)
	case projection.FormatParquet:
		err = projection.WriteParquet(&buf, table)
	default:
		writeSuccess(ctx, w, http.StatusOK, table)
		return
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", projection.ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+table.Name+"."+format+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	const msg = "internal server error"

	writeJSON(w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: "internalError", Message: msg}},
		},
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrHistoryCycle):
		return mappedError{HTTPStatus: http.StatusUnprocessableEntity, Reason: "historyCycle", Status: "FAILED_PRECONDITION"}
	case errors.Is(err, usecase.ErrTransport), errors.Is(err, projection.ErrMissingField):
		return mappedError{HTTPStatus: http.StatusBadGateway, Reason: "upstreamFailure", Status: "UNAVAILABLE"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	}
}

package app

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"

	"tours.stagebridge.org/internal/middleware"
	"tours.stagebridge.org/internal/report"
)

// errorResponse writes {"error": message} with the given status.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	if err := writeJSON(w, status, envelope{"error": message}, nil); err != nil {
		app.Logger.Error("failed to write error response", "error", err, "path", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs and reports an unexpected failure and hides it
// from the client.
func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.RequestIDFrom(r.Context())
	app.Logger.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", requestID,
	)
	report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
		Tags: map[string]string{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": requestID,
		},
		ExtraContext: map[string]interface{}{
			"query": r.URL.RawQuery,
		},
		Level: sentry.LevelError,
	})
	app.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request, what string) {
	app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("%s not found", what))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	app.errorResponse(w, r, http.StatusBadRequest, fields)
}

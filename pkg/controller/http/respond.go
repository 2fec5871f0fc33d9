package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/service/export"
	"github.com/riskops-lab/themis/pkg/utils/errutil"
	"github.com/riskops-lab/themis/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// handleError maps domain errors onto HTTP status codes before delegating
// to errutil.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEntryNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidResult),
		errors.Is(err, export.ErrInvalidImportFormat):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

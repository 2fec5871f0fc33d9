package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/utils/errutil"
)

func (s *Server) assessQualitative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.QualitativeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode qualitative input"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.Assess.Qualitative(ctx, input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

func (s *Server) assessQuantitative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.QuantitativeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode quantitative input"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.Assess.Quantitative(ctx, input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

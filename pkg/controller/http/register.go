package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"github.com/riskops-lab/themis/pkg/usecase"
	"github.com/riskops-lab/themis/pkg/utils/errutil"
	"github.com/riskops-lab/themis/pkg/utils/safe"
)

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := usecase.Filter{
		Status: types.RiskStatus(r.URL.Query().Get("status")),
		Type:   types.RiskType(r.URL.Query().Get("type")),
		Query:  r.URL.Query().Get("q"),
	}
	if filter.Status != "" {
		if err := filter.Status.Validate(); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
	}
	if filter.Type != "" {
		if err := filter.Type.Validate(); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
	}

	entries, err := s.uc.Register.List(ctx, filter)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	if entries == nil {
		entries = []*model.RiskEntry{}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"total": len(entries),
		"risks": entries,
	})
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := s.uc.Register.Get(ctx, types.EntryID(chi.URLParam(r, "riskID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, entry)
}

func (s *Server) addRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Owner       string           `json:"owner"`
		Notes       string           `json:"notes"`
		Result      model.RiskResult `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode register request"), http.StatusBadRequest)
		return
	}

	entry, err := s.uc.Register.Add(ctx, req.Result, req.Name, req.Description, req.Owner, req.Notes)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, entry)
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Status      *types.RiskStatus `json:"status"`
		Owner       *string           `json:"owner"`
		ReviewDate  *time.Time        `json:"reviewDate"`
		Notes       *string           `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode update request"), http.StatusBadRequest)
		return
	}

	entry, err := s.uc.Register.Update(ctx, types.EntryID(chi.URLParam(r, "riskID")), usecase.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Owner:       req.Owner,
		ReviewDate:  req.ReviewDate,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, entry)
}

func (s *Server) updateRiskStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Status types.RiskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode status request"), http.StatusBadRequest)
		return
	}
	if err := req.Status.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	entry, err := s.uc.Register.UpdateStatus(ctx, types.EntryID(chi.URLParam(r, "riskID")), req.Status)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, entry)
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Register.Delete(ctx, types.EntryID(chi.URLParam(r, "riskID"))); err != nil {
		handleError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Register.Clear(ctx); err != nil {
		handleError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) heatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matrix, err := s.uc.Register.Heatmap(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"matrix": matrix})
}

func (s *Server) exportRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		data, err := s.uc.Register.ExportJSON(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="risk_register.json"`)
		safe.Write(ctx, w, data)

	case "csv":
		text, err := s.uc.Register.ExportCSV(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="risk_register.csv"`)
		safe.Write(ctx, w, []byte(text))

	default:
		errutil.HandleHTTP(ctx, w, goerr.New("unknown export format", goerr.V("format", format)), http.StatusBadRequest)
	}
}

func (s *Server) importRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read import body"), http.StatusBadRequest)
		return
	}

	count, err := s.uc.Register.ImportJSON(ctx, data)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"imported": count})
}

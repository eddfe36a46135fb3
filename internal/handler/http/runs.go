// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/store"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

const defaultRunsLimit = 100

// listRuns serves GET /api/runs?run_id=&worker=&limit=.
func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.runs == nil {
		h.writeError(w, r, ErrHistoryDisabled)
		return
	}

	q := r.URL.Query()
	filter := store.RunFilter{
		RunID:  q.Get("run_id"),
		Worker: q.Get("worker"),
		Limit:  defaultRunsLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			h.writeError(w, r, ErrInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	runs, err := h.runs.ListRuns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if runs == nil {
		runs = []models.RunRecord{}
	}

	log.Debug().Int("count", len(runs)).Msg("runs listed")
	_, _ = utils.WriteJSON(w, runs, http.StatusOK)
}

// getRun serves GET /api/runs/{id}.
func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		h.writeError(w, r, ErrHistoryDisabled)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, r, ErrInvalidRunID)
		return
	}

	rec, err := h.runs.GetRun(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = msgInternalServerError
	}
	utils.WriteError(w, msg, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

// AdminPrefix is the route prefix of the administrative API.
const AdminPrefix = "/_app/{account}/{app}/_admin"

// NotificationResult is the body returned by the notification endpoint.
type NotificationResult struct {
	Delivered int `json:"delivered"`
}

// AdminHandler serves the administrative HTTP API:
//
//	POST /_app/{account}/{app}/_admin/_users/{userID}/_kick
//	POST /_app/{account}/{app}/_admin/_notifications/send
//	GET  /_app/{account}/{app}/_admin/_users
func (s *Server) AdminHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route(AdminPrefix, func(r chi.Router) {
		r.Use(s.checkApplication)
		r.Post("/_users/{userID}/_kick", s.kickHandler)
		r.Post("/_notifications/send", s.notifyHandler)
		r.Get("/_users", s.usersHandler)
	})
	return r
}

func (s *Server) checkApplication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "account") != s.opts.Account || chi.URLParam(r, "app") != s.opts.Application {
			utils.WriteError(w, "application not found", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) kickHandler(w http.ResponseWriter, r *http.Request) {
	var req models.KickRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := chi.URLParam(r, "userID")
	if err := s.KickUser(userID, req.Reason); err != nil {
		if errors.Is(err, sdk.ErrUserNotFound) {
			utils.WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) notifyHandler(w http.ResponseWriter, r *http.Request) {
	var req models.NotificationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserIDs == "" || req.Type == "" {
		utils.WriteError(w, "userIds and type are required", http.StatusBadRequest)
		return
	}

	n, err := s.Notify(req)
	if err != nil {
		if errors.Is(err, sdk.ErrUserNotFound) {
			utils.WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, NotificationResult{Delivered: n}, http.StatusOK)
}

func (s *Server) usersHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.ConnectedUsers{UserIDs: s.ConnectedUsers()}, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/gameflow-harness/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	History bool   `json:"history"`
}

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok", History: h.runs != nil}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, versionResponse{
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}

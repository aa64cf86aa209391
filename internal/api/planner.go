package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"salimas-planner/internal/metrics"
	"salimas-planner/internal/model"
	"salimas-planner/internal/store"
)

func (s *Server) handleSavePlanner(w http.ResponseWriter, r *http.Request) {
	var snap model.Snapshot
	if err := decodeJSON(r, &snap); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if snap.Name == "" {
		jsonError(w, http.StatusBadRequest, "snapshot name must not be empty")
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to encode snapshot")
		return
	}
	if _, err := store.InsertSnapshot(r.Context(), s.db, snap.Name, data); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save snapshot")
		return
	}

	metrics.SnapshotsSaved.Inc()
	jsonResponse(w, http.StatusOK, model.SaveResult{Status: "saved", Name: snap.Name})
}

func (s *Server) handleListPlanners(w http.ResponseWriter, r *http.Request) {
	summaries, err := store.ListSnapshots(r.Context(), s.db)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	if summaries == nil {
		summaries = []model.SnapshotSummary{}
	}
	jsonResponse(w, http.StatusOK, summaries)
}

func (s *Server) handleLoadPlanner(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid snapshot id")
		return
	}

	data, err := store.GetSnapshot(r.Context(), s.db, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "snapshot not found")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}

	// The blob is already the snapshot JSON.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

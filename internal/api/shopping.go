package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"salimas-planner/internal/metrics"
	"salimas-planner/internal/model"
	"salimas-planner/internal/store"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListActiveItems(r.Context(), s.db)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string  `json:"name"`
		Category *string `json:"category"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		jsonError(w, http.StatusBadRequest, "name must not be empty")
		return
	}

	item, err := store.CreateItem(r.Context(), s.db, payload.Name, payload.Category)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	metrics.ItemsAdded.Inc()
	jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.IsZero() {
		jsonError(w, http.StatusBadRequest, "no updatable fields in body")
		return
	}

	switch err := store.UpdateItemFields(r.Context(), s.db, id, patch); {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to update item")
	default:
		jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	switch err := store.DeleteItem(r.Context(), s.db, id); {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
	default:
		jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (s *Server) handleClearItems(w http.ResponseWriter, r *http.Request) {
	if err := store.ClearItems(r.Context(), s.db); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to clear shopping list")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	names, err := store.SuggestNames(r.Context(), s.db, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}
	if names == nil {
		names = []string{}
	}
	jsonResponse(w, http.StatusOK, names)
}

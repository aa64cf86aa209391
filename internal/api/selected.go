package api

import (
	"net/http"
	"strconv"
	"strings"

	"salimas-planner/internal/model"
	"salimas-planner/internal/store"
)

func (s *Server) handleSelectedMeals(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	for _, part := range strings.Split(r.URL.Query().Get("ids"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid recipe id "+part)
			return
		}
		ids = append(ids, id)
	}

	meals, err := store.RecipesByIDs(r.Context(), s.db, ids)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load recipes")
		return
	}
	if meals == nil {
		meals = []model.Meal{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"meals": meals})
}

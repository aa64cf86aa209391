package api

import (
	"database/sql"
	"net/http"
)

// Server holds the API's dependencies.
type Server struct {
	db *sql.DB
}

// NewRouter builds the API handler. An empty apiKey leaves the API open.
func NewRouter(database *sql.DB, apiKey string) http.Handler {
	s := &Server{db: database}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shopping_list", s.handleListItems)
	mux.HandleFunc("POST /api/shopping_list", s.handleCreateItem)
	mux.HandleFunc("GET /api/shopping_list/suggestions", s.handleSuggestions)
	mux.HandleFunc("PATCH /api/shopping_list/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /api/shopping_list/{id}", s.handleDeleteItem)
	mux.HandleFunc("POST /api/shopping_list/clear", s.handleClearItems)

	mux.HandleFunc("POST /api/planner/save", s.handleSavePlanner)
	mux.HandleFunc("GET /api/planner/list", s.handleListPlanners)
	mux.HandleFunc("GET /api/planner/load/{id}", s.handleLoadPlanner)

	mux.HandleFunc("GET /api/selected", s.handleSelectedMeals)

	return AuthMiddleware(apiKey, mux)
}

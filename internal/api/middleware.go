package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"salimas-planner/internal/auth"
	"salimas-planner/internal/metrics"
)

// AuthMiddleware rejects requests without a valid bearer token. An empty
// apiKey disables authentication, for local single-user setups.
func AuthMiddleware(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			jsonError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if err := auth.VerifyToken(apiKey, token); err != nil {
			jsonError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs every request and feeds the request counter.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(recorder.status)).Inc()
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

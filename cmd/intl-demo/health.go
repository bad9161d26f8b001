package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const checkTimeout = 5 * time.Second

// checks maps a dependency name to a function reporting whether it is
// reachable.
type checks map[string]func(ctx context.Context) error

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks,omitempty"`
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// readiness runs every check in parallel and answers 503 when any fails.
func readiness(cs checks, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		resp := healthResponse{Status: "healthy", Checks: make(map[string]checkResult, len(cs))}

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for name, check := range cs {
			wg.Go(func() {
				res := checkResult{Status: "healthy"}
				if err := check(ctx); err != nil {
					log.WarnContext(ctx, "health check failed", slog.String("check", name), slog.Any("error", err))
					res = checkResult{Status: "unhealthy", Error: err.Error()}
				}

				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = res
				if res.Status != "healthy" {
					resp.Status = "unhealthy"
				}
			})
		}
		wg.Wait()

		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

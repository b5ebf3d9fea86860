// Package http provides HTTP handlers for password evaluation.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/passmeter/internal/models"
	"github.com/atinyakov/passmeter/internal/strength"
)

// maxBodyBytes bounds the size of an evaluate request body. Larger bodies
// are rejected with 413.
const maxBodyBytes = 64 << 10

// StrengthService defines the evaluation operations
// required by the HTTP handlers.
type StrengthService interface {
	// Evaluate classifies a password and records the outcome.
	Evaluate(ctx context.Context, password string) strength.Result
	// Stats returns the number of logged evaluations per strength.
	Stats(ctx context.Context) (models.Stats, error)
}

// StrengthHandler handles HTTP requests for password evaluation.
type StrengthHandler struct {
	// StrengthService performs the evaluation and keeps the log.
	StrengthService StrengthService
}

// Evaluate handles POST /api/evaluate.
// It expects a JSON body of at most 64 KiB with a "password" field (an empty
// password is valid) and returns the strength, its percentage and label, and every requirement.
func (h *StrengthHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	res := h.StrengthService.Evaluate(r.Context(), req.Password)

	writeJSON(w, models.NewEvaluateResponse(res))
}

// Stats handles GET /api/stats and reports evaluation counts per strength.
func (h *StrengthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StrengthService.Stats(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

// Requirements handles GET /api/requirements and lists the fixed
// requirement table in display order.
func (h *StrengthHandler) Requirements(w http.ResponseWriter, _ *http.Request) {
	reqs := make([]models.Requirement, 0, strength.RequirementCount)
	for _, r := range strength.Requirements() {
		reqs = append(reqs, models.Requirement{Name: r.Name(), Label: r.Label()})
	}
	writeJSON(w, reqs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Package models defines the records and payloads shared by the passmeter
// server, its storage layer and its clients.
package models

import (
	"time"

	"github.com/atinyakov/passmeter/internal/strength"
)

// EvaluationRecord is one logged evaluation. It never carries the password.
type EvaluationRecord struct {
	// ID is the unique identifier of the record.
	ID string
	// Strength is the classification that was returned.
	Strength strength.Strength
	// Satisfied is how many requirements held.
	Satisfied int
	// Met lists the names of the requirements that held, in display order.
	Met []string
	// CreatedAt is when the evaluation happened.
	CreatedAt time.Time
}

// EvaluateRequest is the JSON body accepted by POST /api/evaluate.
type EvaluateRequest struct {
	// Password is the candidate password. An empty value is valid.
	Password string `json:"password"`
}

// RequirementStatus reports one requirement of an evaluation.
type RequirementStatus struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Met   bool   `json:"met"`
}

// EvaluateResponse is the JSON body returned by POST /api/evaluate.
type EvaluateResponse struct {
	Strength     strength.Strength   `json:"strength"`
	Percentage   string              `json:"percentage"`
	Label        string              `json:"label"`
	Satisfied    int                 `json:"satisfied"`
	Requirements []RequirementStatus `json:"requirements"`
}

// Requirement describes one entry of the fixed requirement table.
type Requirement struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Stats counts logged evaluations per strength.
type Stats struct {
	Weak   int64 `json:"weak"`
	Medium int64 `json:"medium"`
	Strong int64 `json:"strong"`
	Total  int64 `json:"total"`
}

// NewEvaluateResponse builds the wire form of an evaluation result.
func NewEvaluateResponse(res strength.Result) EvaluateResponse {
	reqs := make([]RequirementStatus, 0, strength.RequirementCount)
	for _, r := range strength.Requirements() {
		reqs = append(reqs, RequirementStatus{Name: r.Name(), Label: r.Label(), Met: res.Met(r)})
	}
	return EvaluateResponse{
		Strength:     res.Strength,
		Percentage:   res.Strength.Percentage(),
		Label:        res.Strength.Label(),
		Satisfied:    res.Count(),
		Requirements: reqs,
	}
}

// Result converts the wire form back into an evaluation result.
// Requirements with unknown names are ignored.
func (r EvaluateResponse) Result() strength.Result {
	res := strength.Result{Strength: r.Strength}
	for _, st := range r.Requirements {
		for _, req := range strength.Requirements() {
			if req.Name() == st.Name {
				res.Satisfied[req] = st.Met
			}
		}
	}
	return res
}

// NewStats builds Stats from per-strength counts.
func NewStats(counts map[strength.Strength]int64) Stats {
	s := Stats{
		Weak:   counts[strength.Weak],
		Medium: counts[strength.Medium],
		Strong: counts[strength.Strong],
	}
	s.Total = s.Weak + s.Medium + s.Strong
	return s
}

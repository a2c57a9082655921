// Package selector ranks bank questions for one user, blending the
// shared confidence signal with the user's own practice history.
package selector

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/abhisek/conjugo/internal/store"
)

// oversample is the candidate multiplier: the store is asked for this
// many times the requested count before scoring trims the list.
const oversample = 3

// QuestionSource is the read slice of the question store the selector
// needs.
type QuestionSource interface {
	RandomByKind(ctx context.Context, kind string, f store.QuestionFilter, limit int) ([]store.Question, error)
}

// StatSource provides the requesting user's per-question history.
type StatSource interface {
	For(ctx context.Context, userID string, questionIDs []int) (map[int]store.PracticeStat, error)
}

// Criteria restricts and shapes one selection.
type Criteria struct {
	store.QuestionFilter

	// Regional person policy: candidates whose person slot uses vos or
	// vosotros are dropped unless allowed here.
	IncludeVos      bool
	IncludeVosotros bool
}

// Selector scores and ranks candidates drawn from the bank.
type Selector struct {
	questions QuestionSource
	stats     StatSource
	jitter    func() float64
}

// New creates a Selector over the given store slices.
func New(questions QuestionSource, stats StatSource) *Selector {
	return &Selector{
		questions: questions,
		stats:     stats,
		jitter: func() float64 {
			return rand.Float64()*10 - 5
		},
	}
}

type candidate struct {
	question store.Question
	score    float64
}

// Select returns up to count bank questions of the given kind ranked
// for the user. Fewer than count may come back when the bank is thin.
func (s *Selector) Select(ctx context.Context, userID, kind string, c Criteria, count int) ([]store.Question, error) {
	if count <= 0 {
		return nil, nil
	}

	drawn, err := s.questions.RandomByKind(ctx, kind, c.QuestionFilter, count*oversample)
	if err != nil {
		return nil, fmt.Errorf("draw candidates: %w", err)
	}

	seen := make(map[int]bool, len(drawn))
	pool := make([]store.Question, 0, len(drawn))
	ids := make([]int, 0, len(drawn))
	for _, q := range drawn {
		if seen[q.ID] || !personAllowed(q.Person, c) {
			continue
		}
		seen[q.ID] = true
		pool = append(pool, q)
		ids = append(ids, q.ID)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	history, err := s.stats.For(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("load practice history: %w", err)
	}

	scored := make([]candidate, len(pool))
	for i, q := range pool {
		st := history[q.ID]
		scored[i] = candidate{
			question: q,
			score: float64(q.Confidence) -
				5*float64(st.PracticeCount) +
				s.jitter() +
				10*float64(st.Rating),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > count {
		scored = scored[:count]
	}
	out := make([]store.Question, len(scored))
	for i, c := range scored {
		out[i] = c.question
	}
	return out, nil
}

// personAllowed applies the caller's vos/vosotros inclusion policy.
func personAllowed(person string, c Criteria) bool {
	p := strings.ToLower(strings.TrimSpace(person))
	if !c.IncludeVosotros && strings.Contains(p, "vosotr") {
		return false
	}
	if !c.IncludeVos && (p == "vos" || strings.HasPrefix(p, "vos/")) {
		return false
	}
	return true
}

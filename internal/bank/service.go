// Package bank maintains the shared question bank's confidence scores
// and per-user practice bookkeeping.
package bank

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/conjugo/internal/store"
)

// Confidence deltas per feedback event. Scores stay clamped to [0,100]
// by the store.
const (
	DeltaFavorite   = 2
	DeltaUnfavorite = -2
	DeltaRateGood   = 1
	DeltaRateBad    = -2
	DeltaComplaint  = -3
)

// PruneAge is how long an unrefreshed bank entry survives.
const PruneAge = 30 * 24 * time.Hour

// Service applies feedback events to the bank. Every confidence write
// is an independent point update; a vanished target row is logged and
// ignored.
type Service struct {
	questions store.QuestionRepo
	stats     store.StatRepo
}

// NewService creates a bank maintenance Service.
func NewService(questions store.QuestionRepo, stats store.StatRepo) *Service {
	return &Service{questions: questions, stats: stats}
}

// RecordPractice counts one delivery of a question to a user.
func (s *Service) RecordPractice(ctx context.Context, userID string, questionID int) error {
	return s.stats.RecordPractice(ctx, userID, questionID)
}

// Favorite stores the user's favorite flag and nudges the shared
// confidence up or down accordingly.
func (s *Service) Favorite(ctx context.Context, userID string, questionID int, favorite bool) error {
	if err := s.stats.SetFavorite(ctx, userID, questionID, favorite); err != nil {
		return err
	}
	delta := DeltaFavorite
	if !favorite {
		delta = DeltaUnfavorite
	}
	s.adjust(ctx, questionID, delta)
	return nil
}

// Rate stores a user's rating (1 good, -1 bad, 0 clears) and applies
// the matching confidence delta.
func (s *Service) Rate(ctx context.Context, userID string, questionID, rating int) error {
	if err := s.stats.SetRating(ctx, userID, questionID, rating); err != nil {
		return err
	}
	switch {
	case rating > 0:
		s.adjust(ctx, questionID, DeltaRateGood)
	case rating < 0:
		s.adjust(ctx, questionID, DeltaRateBad)
	}
	return nil
}

// Complain applies the structured quality-complaint penalty.
func (s *Service) Complain(ctx context.Context, questionID int) {
	s.adjust(ctx, questionID, DeltaComplaint)
}

// Prune removes bank entries older than PruneAge together with their
// orphaned practice stats. Returns the number of questions removed.
func (s *Service) Prune(ctx context.Context) (int, error) {
	return s.questions.DeleteOlderThan(ctx, time.Now().Add(-PruneAge))
}

// adjust is the single confidence write path. The row vanishing
// between read and write is a no-op, never an error for the caller.
func (s *Service) adjust(ctx context.Context, questionID, delta int) {
	ok, err := s.questions.AdjustConfidence(ctx, questionID, delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: confidence update for question %d failed: %v\n", questionID, err)
		return
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: question %d no longer exists, confidence delta dropped\n", questionID)
	}
}

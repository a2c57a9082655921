package bank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/store"
)

type fakeQuestions struct {
	store.QuestionRepo

	confidence map[int]int
	adjusted   []int
	deleted    int
}

func (f *fakeQuestions) AdjustConfidence(_ context.Context, id, delta int) (bool, error) {
	if _, ok := f.confidence[id]; !ok {
		return false, nil
	}
	v := f.confidence[id] + delta
	if v > 100 {
		v = 100
	}
	if v < 0 {
		v = 0
	}
	f.confidence[id] = v
	f.adjusted = append(f.adjusted, delta)
	return true, nil
}

func (f *fakeQuestions) DeleteOlderThan(_ context.Context, _ time.Time) (int, error) {
	return f.deleted, nil
}

type fakeStats struct {
	store.StatRepo

	favorites map[int]bool
	ratings   map[int]int
	err       error
}

func (f *fakeStats) SetFavorite(_ context.Context, _ string, questionID int, favorite bool) error {
	if f.err != nil {
		return f.err
	}
	f.favorites[questionID] = favorite
	return nil
}

func (f *fakeStats) SetRating(_ context.Context, _ string, questionID, rating int) error {
	if f.err != nil {
		return f.err
	}
	f.ratings[questionID] = rating
	return nil
}

func newFixture(confidence map[int]int) (*Service, *fakeQuestions, *fakeStats) {
	q := &fakeQuestions{confidence: confidence}
	st := &fakeStats{favorites: map[int]bool{}, ratings: map[int]int{}}
	return NewService(q, st), q, st
}

func TestFavoriteAppliesDelta(t *testing.T) {
	svc, q, st := newFixture(map[int]int{1: 50})
	ctx := context.Background()

	if err := svc.Favorite(ctx, "u1", 1, true); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if q.confidence[1] != 52 {
		t.Errorf("confidence = %d, want 52", q.confidence[1])
	}
	if !st.favorites[1] {
		t.Error("favorite flag not stored")
	}

	if err := svc.Favorite(ctx, "u1", 1, false); err != nil {
		t.Fatalf("unfavorite: %v", err)
	}
	if q.confidence[1] != 50 {
		t.Errorf("confidence = %d, want 50 after unfavorite", q.confidence[1])
	}
}

func TestRateAppliesDeltas(t *testing.T) {
	svc, q, _ := newFixture(map[int]int{1: 50})
	ctx := context.Background()

	if err := svc.Rate(ctx, "u1", 1, 1); err != nil {
		t.Fatalf("rate good: %v", err)
	}
	if q.confidence[1] != 51 {
		t.Errorf("confidence = %d, want 51", q.confidence[1])
	}

	if err := svc.Rate(ctx, "u1", 1, -1); err != nil {
		t.Fatalf("rate bad: %v", err)
	}
	if q.confidence[1] != 49 {
		t.Errorf("confidence = %d, want 49", q.confidence[1])
	}

	// Clearing a rating moves no confidence.
	if err := svc.Rate(ctx, "u1", 1, 0); err != nil {
		t.Fatalf("clear rating: %v", err)
	}
	if q.confidence[1] != 49 {
		t.Errorf("confidence = %d, want unchanged 49", q.confidence[1])
	}
}

func TestComplainAppliesPenalty(t *testing.T) {
	svc, q, _ := newFixture(map[int]int{1: 2})

	svc.Complain(context.Background(), 1)
	if q.confidence[1] != 0 {
		t.Errorf("confidence = %d, want clamp at 0", q.confidence[1])
	}
}

func TestVanishedRowIsIgnored(t *testing.T) {
	svc, q, _ := newFixture(map[int]int{})

	// Must not error and must not record an adjustment.
	if err := svc.Favorite(context.Background(), "u1", 999, true); err != nil {
		t.Fatalf("favorite on missing row: %v", err)
	}
	if len(q.adjusted) != 0 {
		t.Error("adjustment recorded for missing row")
	}
}

func TestStatWriteFailureSurfaces(t *testing.T) {
	svc, q, st := newFixture(map[int]int{1: 50})
	st.err = errors.New("disk full")

	if err := svc.Rate(context.Background(), "u1", 1, 1); err == nil {
		t.Fatal("expected error from stat write")
	}
	if len(q.adjusted) != 0 {
		t.Error("confidence moved despite failed stat write")
	}
}

func TestPrune(t *testing.T) {
	svc, q, _ := newFixture(map[int]int{})
	q.deleted = 7

	n, err := svc.Prune(context.Background())
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 7 {
		t.Errorf("pruned = %d, want 7", n)
	}
}

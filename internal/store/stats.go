package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/conjugo/ent"
	"github.com/abhisek/conjugo/ent/practicestat"
)

// statRepo implements StatRepo using the ent client. Rows are keyed by
// (user, question) with an upsert on the unique index.
type statRepo struct {
	client *ent.Client
}

func (r *statRepo) For(ctx context.Context, userID string, questionIDs []int) (map[int]PracticeStat, error) {
	if len(questionIDs) == 0 {
		return map[int]PracticeStat{}, nil
	}
	rows, err := r.client.PracticeStat.Query().
		Where(
			practicestat.UserID(userID),
			practicestat.QuestionIDIn(questionIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("practice stats for %s: %w", userID, err)
	}

	out := make(map[int]PracticeStat, len(rows))
	for _, row := range rows {
		out[row.QuestionID] = PracticeStat{
			UserID:        row.UserID,
			QuestionID:    row.QuestionID,
			PracticeCount: row.PracticeCount,
			Rating:        row.Rating,
			Favorite:      row.Favorite,
			LastPracticed: row.LastPracticed,
		}
	}
	return out, nil
}

func (r *statRepo) RecordPractice(ctx context.Context, userID string, questionID int) error {
	err := r.client.PracticeStat.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetPracticeCount(1).
		OnConflictColumns(practicestat.FieldUserID, practicestat.FieldQuestionID).
		Update(func(u *ent.PracticeStatUpsert) {
			u.AddPracticeCount(1)
			u.SetLastPracticed(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record practice: %w", err)
	}
	return nil
}

func (r *statRepo) SetRating(ctx context.Context, userID string, questionID, rating int) error {
	if rating < -1 || rating > 1 {
		return fmt.Errorf("rating %d out of range", rating)
	}
	err := r.client.PracticeStat.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetRating(rating).
		OnConflictColumns(practicestat.FieldUserID, practicestat.FieldQuestionID).
		Update(func(u *ent.PracticeStatUpsert) {
			u.SetRating(rating)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

func (r *statRepo) SetFavorite(ctx context.Context, userID string, questionID int, favorite bool) error {
	err := r.client.PracticeStat.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetFavorite(favorite).
		OnConflictColumns(practicestat.FieldUserID, practicestat.FieldQuestionID).
		Update(func(u *ent.PracticeStatUpsert) {
			u.SetFavorite(favorite)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	return nil
}

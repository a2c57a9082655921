// Code generated by ent, DO NOT EDIT.

package practicestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldQuestionID, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldPracticeCount, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldRating, v))
}

// Favorite applies equality check predicate on the "favorite" field. It's identical to FavoriteEQ.
func Favorite(v bool) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldFavorite, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldLastPracticed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldQuestionID, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldPracticeCount, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldRating, v))
}

// FavoriteEQ applies the EQ predicate on the "favorite" field.
func FavoriteEQ(v bool) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldFavorite, v))
}

// FavoriteNEQ applies the NEQ predicate on the "favorite" field.
func FavoriteNEQ(v bool) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldFavorite, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldLastPracticed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.NotPredicates(p))
}

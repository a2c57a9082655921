// Code generated by ent, DO NOT EDIT.

package practicestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicestat type in the database.
	Label = "practice_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldFavorite holds the string denoting the favorite field in the database.
	FieldFavorite = "favorite"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// Table holds the table name of the practicestat in the database.
	Table = "practice_stats"
)

// Columns holds all SQL columns for practicestat fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldPracticeCount,
	FieldRating,
	FieldFavorite,
	FieldLastPracticed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating int
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
	// DefaultFavorite holds the default value on creation for the "favorite" field.
	DefaultFavorite bool
	// DefaultLastPracticed holds the default value on creation for the "last_practiced" field.
	DefaultLastPracticed func() time.Time
	// UpdateDefaultLastPracticed holds the default value on update for the "last_practiced" field.
	UpdateDefaultLastPracticed func() time.Time
)

// OrderOption defines the ordering options for the PracticeStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByFavorite orders the results by the favorite field.
func ByFavorite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFavorite, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}

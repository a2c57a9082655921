// Code generated by ent, DO NOT EDIT.

package conjugation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conjugation type in the database.
	Label = "conjugation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVerbID holds the string denoting the verb_id field in the database.
	FieldVerbID = "verb_id"
	// FieldMood holds the string denoting the mood field in the database.
	FieldMood = "mood"
	// FieldTense holds the string denoting the tense field in the database.
	FieldTense = "tense"
	// FieldPerson holds the string denoting the person field in the database.
	FieldPerson = "person"
	// FieldForm holds the string denoting the form field in the database.
	FieldForm = "form"
	// EdgeVerb holds the string denoting the verb edge name in mutations.
	EdgeVerb = "verb"
	// Table holds the table name of the conjugation in the database.
	Table = "conjugations"
	// VerbTable is the table that holds the verb relation/edge.
	VerbTable = "conjugations"
	// VerbInverseTable is the table name for the Verb entity.
	// It exists in this package in order to avoid circular dependency with the "verb" package.
	VerbInverseTable = "verbs"
	// VerbColumn is the table column denoting the verb relation/edge.
	VerbColumn = "verb_id"
)

// Columns holds all SQL columns for conjugation fields.
var Columns = []string{
	FieldID,
	FieldVerbID,
	FieldMood,
	FieldTense,
	FieldPerson,
	FieldForm,
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

// OrderOption defines the ordering options for the Conjugation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVerbID orders the results by the verb_id field.
func ByVerbID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerbID, opts...).ToFunc()
}

// ByMood orders the results by the mood field.
func ByMood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMood, opts...).ToFunc()
}

// ByTense orders the results by the tense field.
func ByTense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTense, opts...).ToFunc()
}

// ByPerson orders the results by the person field.
func ByPerson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerson, opts...).ToFunc()
}

// ByForm orders the results by the form field.
func ByForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForm, opts...).ToFunc()
}

// ByVerbField orders the results by verb field.
func ByVerbField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerbStep(), sql.OrderByField(field, opts...))
	}
}
func newVerbStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerbInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VerbTable, VerbColumn),
	)
}

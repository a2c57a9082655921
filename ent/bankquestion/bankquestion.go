// Code generated by ent, DO NOT EDIT.

package bankquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the bankquestion type in the database.
	Label = "bank_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVerbID holds the string denoting the verb_id field in the database.
	FieldVerbID = "verb_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMood holds the string denoting the mood field in the database.
	FieldMood = "mood"
	// FieldTense holds the string denoting the tense field in the database.
	FieldTense = "tense"
	// FieldPerson holds the string denoting the person field in the database.
	FieldPerson = "person"
	// FieldHostForm holds the string denoting the host_form field in the database.
	FieldHostForm = "host_form"
	// FieldCliticPattern holds the string denoting the clitic_pattern field in the database.
	FieldCliticPattern = "clitic_pattern"
	// FieldIoClitic holds the string denoting the io_clitic field in the database.
	FieldIoClitic = "io_clitic"
	// FieldDoClitic holds the string denoting the do_clitic field in the database.
	FieldDoClitic = "do_clitic"
	// FieldSentence holds the string denoting the sentence field in the database.
	FieldSentence = "sentence"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// FieldHint holds the string denoting the hint field in the database.
	FieldHint = "hint"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVerb holds the string denoting the verb edge name in mutations.
	EdgeVerb = "verb"
	// Table holds the table name of the bankquestion in the database.
	Table = "bank_questions"
	// VerbTable is the table that holds the verb relation/edge.
	VerbTable = "bank_questions"
	// VerbInverseTable is the table name for the Verb entity.
	// It exists in this package in order to avoid circular dependency with the "verb" package.
	VerbInverseTable = "verbs"
	// VerbColumn is the table column denoting the verb relation/edge.
	VerbColumn = "verb_id"
)

// Columns holds all SQL columns for bankquestion fields.
var Columns = []string{
	FieldID,
	FieldVerbID,
	FieldKind,
	FieldMood,
	FieldTense,
	FieldPerson,
	FieldHostForm,
	FieldCliticPattern,
	FieldIoClitic,
	FieldDoClitic,
	FieldSentence,
	FieldAnswer,
	FieldTranslation,
	FieldHint,
	FieldConfidence,
	FieldCreatedAt,
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
	// DefaultHostForm holds the default value on creation for the "host_form" field.
	DefaultHostForm string
	// DefaultCliticPattern holds the default value on creation for the "clitic_pattern" field.
	DefaultCliticPattern string
	// DefaultIoClitic holds the default value on creation for the "io_clitic" field.
	DefaultIoClitic string
	// DefaultDoClitic holds the default value on creation for the "do_clitic" field.
	DefaultDoClitic string
	// DefaultHint holds the default value on creation for the "hint" field.
	DefaultHint string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BankQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVerbID orders the results by the verb_id field.
func ByVerbID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerbID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
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

// ByHostForm orders the results by the host_form field.
func ByHostForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostForm, opts...).ToFunc()
}

// ByCliticPattern orders the results by the clitic_pattern field.
func ByCliticPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCliticPattern, opts...).ToFunc()
}

// ByIoClitic orders the results by the io_clitic field.
func ByIoClitic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIoClitic, opts...).ToFunc()
}

// ByDoClitic orders the results by the do_clitic field.
func ByDoClitic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoClitic, opts...).ToFunc()
}

// BySentence orders the results by the sentence field.
func BySentence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentence, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}

// ByHint orders the results by the hint field.
func ByHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHint, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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

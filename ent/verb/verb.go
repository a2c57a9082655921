// Code generated by ent, DO NOT EDIT.

package verb

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the verb type in the database.
	Label = "verb"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInfinitive holds the string denoting the infinitive field in the database.
	FieldInfinitive = "infinitive"
	// FieldMeaning holds the string denoting the meaning field in the database.
	FieldMeaning = "meaning"
	// FieldConjugationClass holds the string denoting the conjugation_class field in the database.
	FieldConjugationClass = "conjugation_class"
	// FieldIrregular holds the string denoting the irregular field in the database.
	FieldIrregular = "irregular"
	// FieldReflexive holds the string denoting the reflexive field in the database.
	FieldReflexive = "reflexive"
	// FieldTransitive holds the string denoting the transitive field in the database.
	FieldTransitive = "transitive"
	// FieldGerund holds the string denoting the gerund field in the database.
	FieldGerund = "gerund"
	// FieldParticiple holds the string denoting the participle field in the database.
	FieldParticiple = "participle"
	// EdgeConjugations holds the string denoting the conjugations edge name in mutations.
	EdgeConjugations = "conjugations"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// Table holds the table name of the verb in the database.
	Table = "verbs"
	// ConjugationsTable is the table that holds the conjugations relation/edge.
	ConjugationsTable = "conjugations"
	// ConjugationsInverseTable is the table name for the Conjugation entity.
	// It exists in this package in order to avoid circular dependency with the "conjugation" package.
	ConjugationsInverseTable = "conjugations"
	// ConjugationsColumn is the table column denoting the conjugations relation/edge.
	ConjugationsColumn = "verb_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "bank_questions"
	// QuestionsInverseTable is the table name for the BankQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "bankquestion" package.
	QuestionsInverseTable = "bank_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "verb_id"
)

// Columns holds all SQL columns for verb fields.
var Columns = []string{
	FieldID,
	FieldInfinitive,
	FieldMeaning,
	FieldConjugationClass,
	FieldIrregular,
	FieldReflexive,
	FieldTransitive,
	FieldGerund,
	FieldParticiple,
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
	// ConjugationClassValidator is a validator for the "conjugation_class" field. It is called by the builders before save.
	ConjugationClassValidator func(int) error
	// DefaultIrregular holds the default value on creation for the "irregular" field.
	DefaultIrregular bool
	// DefaultReflexive holds the default value on creation for the "reflexive" field.
	DefaultReflexive bool
	// DefaultTransitive holds the default value on creation for the "transitive" field.
	DefaultTransitive bool
	// DefaultGerund holds the default value on creation for the "gerund" field.
	DefaultGerund string
	// DefaultParticiple holds the default value on creation for the "participle" field.
	DefaultParticiple string
)

// OrderOption defines the ordering options for the Verb queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInfinitive orders the results by the infinitive field.
func ByInfinitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfinitive, opts...).ToFunc()
}

// ByMeaning orders the results by the meaning field.
func ByMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaning, opts...).ToFunc()
}

// ByConjugationClass orders the results by the conjugation_class field.
func ByConjugationClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConjugationClass, opts...).ToFunc()
}

// ByIrregular orders the results by the irregular field.
func ByIrregular(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrregular, opts...).ToFunc()
}

// ByReflexive orders the results by the reflexive field.
func ByReflexive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflexive, opts...).ToFunc()
}

// ByTransitive orders the results by the transitive field.
func ByTransitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransitive, opts...).ToFunc()
}

// ByGerund orders the results by the gerund field.
func ByGerund(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGerund, opts...).ToFunc()
}

// ByParticiple orders the results by the participle field.
func ByParticiple(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticiple, opts...).ToFunc()
}

// ByConjugationsCount orders the results by conjugations count.
func ByConjugationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConjugationsStep(), opts...)
	}
}

// ByConjugations orders the results by conjugations terms.
func ByConjugations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConjugationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConjugationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConjugationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConjugationsTable, ConjugationsColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}

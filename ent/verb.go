// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/verb"
)

// Verb is the model entity for the Verb schema.
type Verb struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Dictionary form, e.g. "comer"
	Infinitive string `json:"infinitive,omitempty"`
	// Native-language gloss shown to the learner
	Meaning string `json:"meaning,omitempty"`
	// 1 = -ar, 2 = -er, 3 = -ir
	ConjugationClass int `json:"conjugation_class,omitempty"`
	// Irregular holds the value of the "irregular" field.
	Irregular bool `json:"irregular,omitempty"`
	// Whether the verb has a pronominal (se) form
	Reflexive bool `json:"reflexive,omitempty"`
	// Whether the verb takes a direct object in common use
	Transitive bool `json:"transitive,omitempty"`
	// Gerund form, host for post-attached clitics
	Gerund string `json:"gerund,omitempty"`
	// Participle holds the value of the "participle" field.
	Participle string `json:"participle,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerbQuery when eager-loading is set.
	Edges        VerbEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerbEdges holds the relations/edges for other nodes in the graph.
type VerbEdges struct {
	// Conjugations holds the value of the conjugations edge.
	Conjugations []*Conjugation `json:"conjugations,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*BankQuestion `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConjugationsOrErr returns the Conjugations value or an error if the edge
// was not loaded in eager-loading.
func (e VerbEdges) ConjugationsOrErr() ([]*Conjugation, error) {
	if e.loadedTypes[0] {
		return e.Conjugations, nil
	}
	return nil, &NotLoadedError{edge: "conjugations"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e VerbEdges) QuestionsOrErr() ([]*BankQuestion, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verb) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verb.FieldIrregular, verb.FieldReflexive, verb.FieldTransitive:
			values[i] = new(sql.NullBool)
		case verb.FieldID, verb.FieldConjugationClass:
			values[i] = new(sql.NullInt64)
		case verb.FieldInfinitive, verb.FieldMeaning, verb.FieldGerund, verb.FieldParticiple:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verb fields.
func (_m *Verb) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verb.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verb.FieldInfinitive:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field infinitive", values[i])
			} else if value.Valid {
				_m.Infinitive = value.String
			}
		case verb.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case verb.FieldConjugationClass:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conjugation_class", values[i])
			} else if value.Valid {
				_m.ConjugationClass = int(value.Int64)
			}
		case verb.FieldIrregular:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field irregular", values[i])
			} else if value.Valid {
				_m.Irregular = value.Bool
			}
		case verb.FieldReflexive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reflexive", values[i])
			} else if value.Valid {
				_m.Reflexive = value.Bool
			}
		case verb.FieldTransitive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field transitive", values[i])
			} else if value.Valid {
				_m.Transitive = value.Bool
			}
		case verb.FieldGerund:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gerund", values[i])
			} else if value.Valid {
				_m.Gerund = value.String
			}
		case verb.FieldParticiple:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participle", values[i])
			} else if value.Valid {
				_m.Participle = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verb.
// This includes values selected through modifiers, order, etc.
func (_m *Verb) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConjugations queries the "conjugations" edge of the Verb entity.
func (_m *Verb) QueryConjugations() *ConjugationQuery {
	return NewVerbClient(_m.config).QueryConjugations(_m)
}

// QueryQuestions queries the "questions" edge of the Verb entity.
func (_m *Verb) QueryQuestions() *BankQuestionQuery {
	return NewVerbClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Verb.
// Note that you need to call Verb.Unwrap() before calling this method if this Verb
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verb) Update() *VerbUpdateOne {
	return NewVerbClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verb entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verb) Unwrap() *Verb {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verb is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verb) String() string {
	var builder strings.Builder
	builder.WriteString("Verb(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("infinitive=")
	builder.WriteString(_m.Infinitive)
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("conjugation_class=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConjugationClass))
	builder.WriteString(", ")
	builder.WriteString("irregular=")
	builder.WriteString(fmt.Sprintf("%v", _m.Irregular))
	builder.WriteString(", ")
	builder.WriteString("reflexive=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reflexive))
	builder.WriteString(", ")
	builder.WriteString("transitive=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transitive))
	builder.WriteString(", ")
	builder.WriteString("gerund=")
	builder.WriteString(_m.Gerund)
	builder.WriteString(", ")
	builder.WriteString("participle=")
	builder.WriteString(_m.Participle)
	builder.WriteByte(')')
	return builder.String()
}

// Verbs is a parsable slice of Verb.
type Verbs []*Verb

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/verb"
)

// Conjugation is the model entity for the Conjugation schema.
type Conjugation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VerbID holds the value of the "verb_id" field.
	VerbID int `json:"verb_id,omitempty"`
	// Mood holds the value of the "mood" field.
	Mood string `json:"mood,omitempty"`
	// Tense holds the value of the "tense" field.
	Tense string `json:"tense,omitempty"`
	// Person holds the value of the "person" field.
	Person string `json:"person,omitempty"`
	// Conjugated surface form(s), " | "-separated when interchangeable
	Form string `json:"form,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConjugationQuery when eager-loading is set.
	Edges        ConjugationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConjugationEdges holds the relations/edges for other nodes in the graph.
type ConjugationEdges struct {
	// Verb holds the value of the verb edge.
	Verb *Verb `json:"verb,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VerbOrErr returns the Verb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConjugationEdges) VerbOrErr() (*Verb, error) {
	if e.Verb != nil {
		return e.Verb, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: verb.Label}
	}
	return nil, &NotLoadedError{edge: "verb"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conjugation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conjugation.FieldID, conjugation.FieldVerbID:
			values[i] = new(sql.NullInt64)
		case conjugation.FieldMood, conjugation.FieldTense, conjugation.FieldPerson, conjugation.FieldForm:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conjugation fields.
func (_m *Conjugation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conjugation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conjugation.FieldVerbID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verb_id", values[i])
			} else if value.Valid {
				_m.VerbID = int(value.Int64)
			}
		case conjugation.FieldMood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mood", values[i])
			} else if value.Valid {
				_m.Mood = value.String
			}
		case conjugation.FieldTense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tense", values[i])
			} else if value.Valid {
				_m.Tense = value.String
			}
		case conjugation.FieldPerson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field person", values[i])
			} else if value.Valid {
				_m.Person = value.String
			}
		case conjugation.FieldForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form", values[i])
			} else if value.Valid {
				_m.Form = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conjugation.
// This includes values selected through modifiers, order, etc.
func (_m *Conjugation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVerb queries the "verb" edge of the Conjugation entity.
func (_m *Conjugation) QueryVerb() *VerbQuery {
	return NewConjugationClient(_m.config).QueryVerb(_m)
}

// Update returns a builder for updating this Conjugation.
// Note that you need to call Conjugation.Unwrap() before calling this method if this Conjugation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conjugation) Update() *ConjugationUpdateOne {
	return NewConjugationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conjugation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conjugation) Unwrap() *Conjugation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conjugation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conjugation) String() string {
	var builder strings.Builder
	builder.WriteString("Conjugation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("verb_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerbID))
	builder.WriteString(", ")
	builder.WriteString("mood=")
	builder.WriteString(_m.Mood)
	builder.WriteString(", ")
	builder.WriteString("tense=")
	builder.WriteString(_m.Tense)
	builder.WriteString(", ")
	builder.WriteString("person=")
	builder.WriteString(_m.Person)
	builder.WriteString(", ")
	builder.WriteString("form=")
	builder.WriteString(_m.Form)
	builder.WriteByte(')')
	return builder.String()
}

// Conjugations is a parsable slice of Conjugation.
type Conjugations []*Conjugation

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/verb"
)

// BankQuestion is the model entity for the BankQuestion schema.
type BankQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VerbID holds the value of the "verb_id" field.
	VerbID int `json:"verb_id,omitempty"`
	// Bank kind: "sentence" (plain conjugation) or "pronoun" (clitic)
	Kind string `json:"kind,omitempty"`
	// Mood holds the value of the "mood" field.
	Mood string `json:"mood,omitempty"`
	// Tense holds the value of the "tense" field.
	Tense string `json:"tense,omitempty"`
	// Person holds the value of the "person" field.
	Person string `json:"person,omitempty"`
	// Pronoun bank only: finite, imperative, infinitive, gerund, prnl
	HostForm string `json:"host_form,omitempty"`
	// Pronoun bank only: DO, IO or DO_IO; empty for prnl
	CliticPattern string `json:"clitic_pattern,omitempty"`
	// IoClitic holds the value of the "io_clitic" field.
	IoClitic string `json:"io_clitic,omitempty"`
	// DoClitic holds the value of the "do_clitic" field.
	DoClitic string `json:"do_clitic,omitempty"`
	// Rendered sentence containing exactly one __?__ blank
	Sentence string `json:"sentence,omitempty"`
	// Accepted answer; interchangeable forms " | "-separated
	Answer string `json:"answer,omitempty"`
	// Translation holds the value of the "translation" field.
	Translation string `json:"translation,omitempty"`
	// Hint holds the value of the "hint" field.
	Hint string `json:"hint,omitempty"`
	// Quality score, clamped to [0,100]
	Confidence int `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BankQuestionQuery when eager-loading is set.
	Edges        BankQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BankQuestionEdges holds the relations/edges for other nodes in the graph.
type BankQuestionEdges struct {
	// Verb holds the value of the verb edge.
	Verb *Verb `json:"verb,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VerbOrErr returns the Verb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BankQuestionEdges) VerbOrErr() (*Verb, error) {
	if e.Verb != nil {
		return e.Verb, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: verb.Label}
	}
	return nil, &NotLoadedError{edge: "verb"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BankQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bankquestion.FieldID, bankquestion.FieldVerbID, bankquestion.FieldConfidence:
			values[i] = new(sql.NullInt64)
		case bankquestion.FieldKind, bankquestion.FieldMood, bankquestion.FieldTense, bankquestion.FieldPerson, bankquestion.FieldHostForm, bankquestion.FieldCliticPattern, bankquestion.FieldIoClitic, bankquestion.FieldDoClitic, bankquestion.FieldSentence, bankquestion.FieldAnswer, bankquestion.FieldTranslation, bankquestion.FieldHint:
			values[i] = new(sql.NullString)
		case bankquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BankQuestion fields.
func (_m *BankQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bankquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bankquestion.FieldVerbID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verb_id", values[i])
			} else if value.Valid {
				_m.VerbID = int(value.Int64)
			}
		case bankquestion.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case bankquestion.FieldMood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mood", values[i])
			} else if value.Valid {
				_m.Mood = value.String
			}
		case bankquestion.FieldTense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tense", values[i])
			} else if value.Valid {
				_m.Tense = value.String
			}
		case bankquestion.FieldPerson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field person", values[i])
			} else if value.Valid {
				_m.Person = value.String
			}
		case bankquestion.FieldHostForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host_form", values[i])
			} else if value.Valid {
				_m.HostForm = value.String
			}
		case bankquestion.FieldCliticPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clitic_pattern", values[i])
			} else if value.Valid {
				_m.CliticPattern = value.String
			}
		case bankquestion.FieldIoClitic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field io_clitic", values[i])
			} else if value.Valid {
				_m.IoClitic = value.String
			}
		case bankquestion.FieldDoClitic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field do_clitic", values[i])
			} else if value.Valid {
				_m.DoClitic = value.String
			}
		case bankquestion.FieldSentence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentence", values[i])
			} else if value.Valid {
				_m.Sentence = value.String
			}
		case bankquestion.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case bankquestion.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				_m.Translation = value.String
			}
		case bankquestion.FieldHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint", values[i])
			} else if value.Valid {
				_m.Hint = value.String
			}
		case bankquestion.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case bankquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BankQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *BankQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVerb queries the "verb" edge of the BankQuestion entity.
func (_m *BankQuestion) QueryVerb() *VerbQuery {
	return NewBankQuestionClient(_m.config).QueryVerb(_m)
}

// Update returns a builder for updating this BankQuestion.
// Note that you need to call BankQuestion.Unwrap() before calling this method if this BankQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BankQuestion) Update() *BankQuestionUpdateOne {
	return NewBankQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BankQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BankQuestion) Unwrap() *BankQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BankQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BankQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("BankQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("verb_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerbID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
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
	builder.WriteString("host_form=")
	builder.WriteString(_m.HostForm)
	builder.WriteString(", ")
	builder.WriteString("clitic_pattern=")
	builder.WriteString(_m.CliticPattern)
	builder.WriteString(", ")
	builder.WriteString("io_clitic=")
	builder.WriteString(_m.IoClitic)
	builder.WriteString(", ")
	builder.WriteString("do_clitic=")
	builder.WriteString(_m.DoClitic)
	builder.WriteString(", ")
	builder.WriteString("sentence=")
	builder.WriteString(_m.Sentence)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(_m.Translation)
	builder.WriteString(", ")
	builder.WriteString("hint=")
	builder.WriteString(_m.Hint)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BankQuestions is a parsable slice of BankQuestion.
type BankQuestions []*BankQuestion

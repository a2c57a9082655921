// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/llmrequestevent"
	"github.com/abhisek/conjugo/ent/practicestat"
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBankQuestion    = "BankQuestion"
	TypeConjugation     = "Conjugation"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePracticeStat    = "PracticeStat"
	TypeVerb            = "Verb"
)

// BankQuestionMutation represents an operation that mutates the BankQuestion nodes in the graph.
type BankQuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	kind           *string
	mood           *string
	tense          *string
	person         *string
	host_form      *string
	clitic_pattern *string
	io_clitic      *string
	do_clitic      *string
	sentence       *string
	answer         *string
	translation    *string
	hint           *string
	confidence     *int
	addconfidence  *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	verb           *int
	clearedverb    bool
	done           bool
	oldValue       func(context.Context) (*BankQuestion, error)
	predicates     []predicate.BankQuestion
}

var _ ent.Mutation = (*BankQuestionMutation)(nil)

// bankquestionOption allows management of the mutation configuration using functional options.
type bankquestionOption func(*BankQuestionMutation)

// newBankQuestionMutation creates new mutation for the BankQuestion entity.
func newBankQuestionMutation(c config, op Op, opts ...bankquestionOption) *BankQuestionMutation {
	m := &BankQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeBankQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBankQuestionID sets the ID field of the mutation.
func withBankQuestionID(id int) bankquestionOption {
	return func(m *BankQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *BankQuestion
		)
		m.oldValue = func(ctx context.Context) (*BankQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BankQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBankQuestion sets the old BankQuestion of the mutation.
func withBankQuestion(node *BankQuestion) bankquestionOption {
	return func(m *BankQuestionMutation) {
		m.oldValue = func(context.Context) (*BankQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BankQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BankQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BankQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BankQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BankQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVerbID sets the "verb_id" field.
func (m *BankQuestionMutation) SetVerbID(i int) {
	m.verb = &i
}

// VerbID returns the value of the "verb_id" field in the mutation.
func (m *BankQuestionMutation) VerbID() (r int, exists bool) {
	v := m.verb
	if v == nil {
		return
	}
	return *v, true
}

// OldVerbID returns the old "verb_id" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldVerbID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerbID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerbID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerbID: %w", err)
	}
	return oldValue.VerbID, nil
}

// ResetVerbID resets all changes to the "verb_id" field.
func (m *BankQuestionMutation) ResetVerbID() {
	m.verb = nil
}

// SetKind sets the "kind" field.
func (m *BankQuestionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *BankQuestionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *BankQuestionMutation) ResetKind() {
	m.kind = nil
}

// SetMood sets the "mood" field.
func (m *BankQuestionMutation) SetMood(s string) {
	m.mood = &s
}

// Mood returns the value of the "mood" field in the mutation.
func (m *BankQuestionMutation) Mood() (r string, exists bool) {
	v := m.mood
	if v == nil {
		return
	}
	return *v, true
}

// OldMood returns the old "mood" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldMood(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMood: %w", err)
	}
	return oldValue.Mood, nil
}

// ResetMood resets all changes to the "mood" field.
func (m *BankQuestionMutation) ResetMood() {
	m.mood = nil
}

// SetTense sets the "tense" field.
func (m *BankQuestionMutation) SetTense(s string) {
	m.tense = &s
}

// Tense returns the value of the "tense" field in the mutation.
func (m *BankQuestionMutation) Tense() (r string, exists bool) {
	v := m.tense
	if v == nil {
		return
	}
	return *v, true
}

// OldTense returns the old "tense" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldTense(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTense is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTense requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTense: %w", err)
	}
	return oldValue.Tense, nil
}

// ResetTense resets all changes to the "tense" field.
func (m *BankQuestionMutation) ResetTense() {
	m.tense = nil
}

// SetPerson sets the "person" field.
func (m *BankQuestionMutation) SetPerson(s string) {
	m.person = &s
}

// Person returns the value of the "person" field in the mutation.
func (m *BankQuestionMutation) Person() (r string, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPerson returns the old "person" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldPerson(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerson: %w", err)
	}
	return oldValue.Person, nil
}

// ResetPerson resets all changes to the "person" field.
func (m *BankQuestionMutation) ResetPerson() {
	m.person = nil
}

// SetHostForm sets the "host_form" field.
func (m *BankQuestionMutation) SetHostForm(s string) {
	m.host_form = &s
}

// HostForm returns the value of the "host_form" field in the mutation.
func (m *BankQuestionMutation) HostForm() (r string, exists bool) {
	v := m.host_form
	if v == nil {
		return
	}
	return *v, true
}

// OldHostForm returns the old "host_form" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldHostForm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostForm: %w", err)
	}
	return oldValue.HostForm, nil
}

// ResetHostForm resets all changes to the "host_form" field.
func (m *BankQuestionMutation) ResetHostForm() {
	m.host_form = nil
}

// SetCliticPattern sets the "clitic_pattern" field.
func (m *BankQuestionMutation) SetCliticPattern(s string) {
	m.clitic_pattern = &s
}

// CliticPattern returns the value of the "clitic_pattern" field in the mutation.
func (m *BankQuestionMutation) CliticPattern() (r string, exists bool) {
	v := m.clitic_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldCliticPattern returns the old "clitic_pattern" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldCliticPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCliticPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCliticPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCliticPattern: %w", err)
	}
	return oldValue.CliticPattern, nil
}

// ResetCliticPattern resets all changes to the "clitic_pattern" field.
func (m *BankQuestionMutation) ResetCliticPattern() {
	m.clitic_pattern = nil
}

// SetIoClitic sets the "io_clitic" field.
func (m *BankQuestionMutation) SetIoClitic(s string) {
	m.io_clitic = &s
}

// IoClitic returns the value of the "io_clitic" field in the mutation.
func (m *BankQuestionMutation) IoClitic() (r string, exists bool) {
	v := m.io_clitic
	if v == nil {
		return
	}
	return *v, true
}

// OldIoClitic returns the old "io_clitic" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldIoClitic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIoClitic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIoClitic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIoClitic: %w", err)
	}
	return oldValue.IoClitic, nil
}

// ResetIoClitic resets all changes to the "io_clitic" field.
func (m *BankQuestionMutation) ResetIoClitic() {
	m.io_clitic = nil
}

// SetDoClitic sets the "do_clitic" field.
func (m *BankQuestionMutation) SetDoClitic(s string) {
	m.do_clitic = &s
}

// DoClitic returns the value of the "do_clitic" field in the mutation.
func (m *BankQuestionMutation) DoClitic() (r string, exists bool) {
	v := m.do_clitic
	if v == nil {
		return
	}
	return *v, true
}

// OldDoClitic returns the old "do_clitic" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldDoClitic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoClitic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoClitic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoClitic: %w", err)
	}
	return oldValue.DoClitic, nil
}

// ResetDoClitic resets all changes to the "do_clitic" field.
func (m *BankQuestionMutation) ResetDoClitic() {
	m.do_clitic = nil
}

// SetSentence sets the "sentence" field.
func (m *BankQuestionMutation) SetSentence(s string) {
	m.sentence = &s
}

// Sentence returns the value of the "sentence" field in the mutation.
func (m *BankQuestionMutation) Sentence() (r string, exists bool) {
	v := m.sentence
	if v == nil {
		return
	}
	return *v, true
}

// OldSentence returns the old "sentence" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldSentence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentence: %w", err)
	}
	return oldValue.Sentence, nil
}

// ResetSentence resets all changes to the "sentence" field.
func (m *BankQuestionMutation) ResetSentence() {
	m.sentence = nil
}

// SetAnswer sets the "answer" field.
func (m *BankQuestionMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *BankQuestionMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *BankQuestionMutation) ResetAnswer() {
	m.answer = nil
}

// SetTranslation sets the "translation" field.
func (m *BankQuestionMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *BankQuestionMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ResetTranslation resets all changes to the "translation" field.
func (m *BankQuestionMutation) ResetTranslation() {
	m.translation = nil
}

// SetHint sets the "hint" field.
func (m *BankQuestionMutation) SetHint(s string) {
	m.hint = &s
}

// Hint returns the value of the "hint" field in the mutation.
func (m *BankQuestionMutation) Hint() (r string, exists bool) {
	v := m.hint
	if v == nil {
		return
	}
	return *v, true
}

// OldHint returns the old "hint" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHint: %w", err)
	}
	return oldValue.Hint, nil
}

// ResetHint resets all changes to the "hint" field.
func (m *BankQuestionMutation) ResetHint() {
	m.hint = nil
}

// SetConfidence sets the "confidence" field.
func (m *BankQuestionMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BankQuestionMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *BankQuestionMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BankQuestionMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BankQuestionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BankQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BankQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BankQuestion entity.
// If the BankQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BankQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearVerb clears the "verb" edge to the Verb entity.
func (m *BankQuestionMutation) ClearVerb() {
	m.clearedverb = true
	m.clearedFields[bankquestion.FieldVerbID] = struct{}{}
}

// VerbCleared reports if the "verb" edge to the Verb entity was cleared.
func (m *BankQuestionMutation) VerbCleared() bool {
	return m.clearedverb
}

// VerbIDs returns the "verb" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VerbID instead. It exists only for internal usage by the builders.
func (m *BankQuestionMutation) VerbIDs() (ids []int) {
	if id := m.verb; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVerb resets all changes to the "verb" edge.
func (m *BankQuestionMutation) ResetVerb() {
	m.verb = nil
	m.clearedverb = false
}

// Where appends a list predicates to the BankQuestionMutation builder.
func (m *BankQuestionMutation) Where(ps ...predicate.BankQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BankQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BankQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BankQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BankQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BankQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BankQuestion).
func (m *BankQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BankQuestionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.verb != nil {
		fields = append(fields, bankquestion.FieldVerbID)
	}
	if m.kind != nil {
		fields = append(fields, bankquestion.FieldKind)
	}
	if m.mood != nil {
		fields = append(fields, bankquestion.FieldMood)
	}
	if m.tense != nil {
		fields = append(fields, bankquestion.FieldTense)
	}
	if m.person != nil {
		fields = append(fields, bankquestion.FieldPerson)
	}
	if m.host_form != nil {
		fields = append(fields, bankquestion.FieldHostForm)
	}
	if m.clitic_pattern != nil {
		fields = append(fields, bankquestion.FieldCliticPattern)
	}
	if m.io_clitic != nil {
		fields = append(fields, bankquestion.FieldIoClitic)
	}
	if m.do_clitic != nil {
		fields = append(fields, bankquestion.FieldDoClitic)
	}
	if m.sentence != nil {
		fields = append(fields, bankquestion.FieldSentence)
	}
	if m.answer != nil {
		fields = append(fields, bankquestion.FieldAnswer)
	}
	if m.translation != nil {
		fields = append(fields, bankquestion.FieldTranslation)
	}
	if m.hint != nil {
		fields = append(fields, bankquestion.FieldHint)
	}
	if m.confidence != nil {
		fields = append(fields, bankquestion.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, bankquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BankQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bankquestion.FieldVerbID:
		return m.VerbID()
	case bankquestion.FieldKind:
		return m.Kind()
	case bankquestion.FieldMood:
		return m.Mood()
	case bankquestion.FieldTense:
		return m.Tense()
	case bankquestion.FieldPerson:
		return m.Person()
	case bankquestion.FieldHostForm:
		return m.HostForm()
	case bankquestion.FieldCliticPattern:
		return m.CliticPattern()
	case bankquestion.FieldIoClitic:
		return m.IoClitic()
	case bankquestion.FieldDoClitic:
		return m.DoClitic()
	case bankquestion.FieldSentence:
		return m.Sentence()
	case bankquestion.FieldAnswer:
		return m.Answer()
	case bankquestion.FieldTranslation:
		return m.Translation()
	case bankquestion.FieldHint:
		return m.Hint()
	case bankquestion.FieldConfidence:
		return m.Confidence()
	case bankquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BankQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bankquestion.FieldVerbID:
		return m.OldVerbID(ctx)
	case bankquestion.FieldKind:
		return m.OldKind(ctx)
	case bankquestion.FieldMood:
		return m.OldMood(ctx)
	case bankquestion.FieldTense:
		return m.OldTense(ctx)
	case bankquestion.FieldPerson:
		return m.OldPerson(ctx)
	case bankquestion.FieldHostForm:
		return m.OldHostForm(ctx)
	case bankquestion.FieldCliticPattern:
		return m.OldCliticPattern(ctx)
	case bankquestion.FieldIoClitic:
		return m.OldIoClitic(ctx)
	case bankquestion.FieldDoClitic:
		return m.OldDoClitic(ctx)
	case bankquestion.FieldSentence:
		return m.OldSentence(ctx)
	case bankquestion.FieldAnswer:
		return m.OldAnswer(ctx)
	case bankquestion.FieldTranslation:
		return m.OldTranslation(ctx)
	case bankquestion.FieldHint:
		return m.OldHint(ctx)
	case bankquestion.FieldConfidence:
		return m.OldConfidence(ctx)
	case bankquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BankQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bankquestion.FieldVerbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerbID(v)
		return nil
	case bankquestion.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case bankquestion.FieldMood:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMood(v)
		return nil
	case bankquestion.FieldTense:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTense(v)
		return nil
	case bankquestion.FieldPerson:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerson(v)
		return nil
	case bankquestion.FieldHostForm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostForm(v)
		return nil
	case bankquestion.FieldCliticPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCliticPattern(v)
		return nil
	case bankquestion.FieldIoClitic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIoClitic(v)
		return nil
	case bankquestion.FieldDoClitic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoClitic(v)
		return nil
	case bankquestion.FieldSentence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentence(v)
		return nil
	case bankquestion.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case bankquestion.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	case bankquestion.FieldHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHint(v)
		return nil
	case bankquestion.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case bankquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BankQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BankQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, bankquestion.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BankQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bankquestion.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bankquestion.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BankQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BankQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BankQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BankQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BankQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BankQuestionMutation) ResetField(name string) error {
	switch name {
	case bankquestion.FieldVerbID:
		m.ResetVerbID()
		return nil
	case bankquestion.FieldKind:
		m.ResetKind()
		return nil
	case bankquestion.FieldMood:
		m.ResetMood()
		return nil
	case bankquestion.FieldTense:
		m.ResetTense()
		return nil
	case bankquestion.FieldPerson:
		m.ResetPerson()
		return nil
	case bankquestion.FieldHostForm:
		m.ResetHostForm()
		return nil
	case bankquestion.FieldCliticPattern:
		m.ResetCliticPattern()
		return nil
	case bankquestion.FieldIoClitic:
		m.ResetIoClitic()
		return nil
	case bankquestion.FieldDoClitic:
		m.ResetDoClitic()
		return nil
	case bankquestion.FieldSentence:
		m.ResetSentence()
		return nil
	case bankquestion.FieldAnswer:
		m.ResetAnswer()
		return nil
	case bankquestion.FieldTranslation:
		m.ResetTranslation()
		return nil
	case bankquestion.FieldHint:
		m.ResetHint()
		return nil
	case bankquestion.FieldConfidence:
		m.ResetConfidence()
		return nil
	case bankquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BankQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BankQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verb != nil {
		edges = append(edges, bankquestion.EdgeVerb)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BankQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bankquestion.EdgeVerb:
		if id := m.verb; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BankQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BankQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BankQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverb {
		edges = append(edges, bankquestion.EdgeVerb)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BankQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case bankquestion.EdgeVerb:
		return m.clearedverb
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BankQuestionMutation) ClearEdge(name string) error {
	switch name {
	case bankquestion.EdgeVerb:
		m.ClearVerb()
		return nil
	}
	return fmt.Errorf("unknown BankQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BankQuestionMutation) ResetEdge(name string) error {
	switch name {
	case bankquestion.EdgeVerb:
		m.ResetVerb()
		return nil
	}
	return fmt.Errorf("unknown BankQuestion edge %s", name)
}

// ConjugationMutation represents an operation that mutates the Conjugation nodes in the graph.
type ConjugationMutation struct {
	config
	op            Op
	typ           string
	id            *int
	mood          *string
	tense         *string
	person        *string
	form          *string
	clearedFields map[string]struct{}
	verb          *int
	clearedverb   bool
	done          bool
	oldValue      func(context.Context) (*Conjugation, error)
	predicates    []predicate.Conjugation
}

var _ ent.Mutation = (*ConjugationMutation)(nil)

// conjugationOption allows management of the mutation configuration using functional options.
type conjugationOption func(*ConjugationMutation)

// newConjugationMutation creates new mutation for the Conjugation entity.
func newConjugationMutation(c config, op Op, opts ...conjugationOption) *ConjugationMutation {
	m := &ConjugationMutation{
		config:        c,
		op:            op,
		typ:           TypeConjugation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConjugationID sets the ID field of the mutation.
func withConjugationID(id int) conjugationOption {
	return func(m *ConjugationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conjugation
		)
		m.oldValue = func(ctx context.Context) (*Conjugation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conjugation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConjugation sets the old Conjugation of the mutation.
func withConjugation(node *Conjugation) conjugationOption {
	return func(m *ConjugationMutation) {
		m.oldValue = func(context.Context) (*Conjugation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConjugationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConjugationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConjugationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConjugationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conjugation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVerbID sets the "verb_id" field.
func (m *ConjugationMutation) SetVerbID(i int) {
	m.verb = &i
}

// VerbID returns the value of the "verb_id" field in the mutation.
func (m *ConjugationMutation) VerbID() (r int, exists bool) {
	v := m.verb
	if v == nil {
		return
	}
	return *v, true
}

// OldVerbID returns the old "verb_id" field's value of the Conjugation entity.
// If the Conjugation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConjugationMutation) OldVerbID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerbID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerbID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerbID: %w", err)
	}
	return oldValue.VerbID, nil
}

// ResetVerbID resets all changes to the "verb_id" field.
func (m *ConjugationMutation) ResetVerbID() {
	m.verb = nil
}

// SetMood sets the "mood" field.
func (m *ConjugationMutation) SetMood(s string) {
	m.mood = &s
}

// Mood returns the value of the "mood" field in the mutation.
func (m *ConjugationMutation) Mood() (r string, exists bool) {
	v := m.mood
	if v == nil {
		return
	}
	return *v, true
}

// OldMood returns the old "mood" field's value of the Conjugation entity.
// If the Conjugation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConjugationMutation) OldMood(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMood: %w", err)
	}
	return oldValue.Mood, nil
}

// ResetMood resets all changes to the "mood" field.
func (m *ConjugationMutation) ResetMood() {
	m.mood = nil
}

// SetTense sets the "tense" field.
func (m *ConjugationMutation) SetTense(s string) {
	m.tense = &s
}

// Tense returns the value of the "tense" field in the mutation.
func (m *ConjugationMutation) Tense() (r string, exists bool) {
	v := m.tense
	if v == nil {
		return
	}
	return *v, true
}

// OldTense returns the old "tense" field's value of the Conjugation entity.
// If the Conjugation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConjugationMutation) OldTense(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTense is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTense requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTense: %w", err)
	}
	return oldValue.Tense, nil
}

// ResetTense resets all changes to the "tense" field.
func (m *ConjugationMutation) ResetTense() {
	m.tense = nil
}

// SetPerson sets the "person" field.
func (m *ConjugationMutation) SetPerson(s string) {
	m.person = &s
}

// Person returns the value of the "person" field in the mutation.
func (m *ConjugationMutation) Person() (r string, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPerson returns the old "person" field's value of the Conjugation entity.
// If the Conjugation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConjugationMutation) OldPerson(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerson: %w", err)
	}
	return oldValue.Person, nil
}

// ResetPerson resets all changes to the "person" field.
func (m *ConjugationMutation) ResetPerson() {
	m.person = nil
}

// SetForm sets the "form" field.
func (m *ConjugationMutation) SetForm(s string) {
	m.form = &s
}

// Form returns the value of the "form" field in the mutation.
func (m *ConjugationMutation) Form() (r string, exists bool) {
	v := m.form
	if v == nil {
		return
	}
	return *v, true
}

// OldForm returns the old "form" field's value of the Conjugation entity.
// If the Conjugation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConjugationMutation) OldForm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForm: %w", err)
	}
	return oldValue.Form, nil
}

// ResetForm resets all changes to the "form" field.
func (m *ConjugationMutation) ResetForm() {
	m.form = nil
}

// ClearVerb clears the "verb" edge to the Verb entity.
func (m *ConjugationMutation) ClearVerb() {
	m.clearedverb = true
	m.clearedFields[conjugation.FieldVerbID] = struct{}{}
}

// VerbCleared reports if the "verb" edge to the Verb entity was cleared.
func (m *ConjugationMutation) VerbCleared() bool {
	return m.clearedverb
}

// VerbIDs returns the "verb" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VerbID instead. It exists only for internal usage by the builders.
func (m *ConjugationMutation) VerbIDs() (ids []int) {
	if id := m.verb; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVerb resets all changes to the "verb" edge.
func (m *ConjugationMutation) ResetVerb() {
	m.verb = nil
	m.clearedverb = false
}

// Where appends a list predicates to the ConjugationMutation builder.
func (m *ConjugationMutation) Where(ps ...predicate.Conjugation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConjugationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConjugationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conjugation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConjugationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConjugationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conjugation).
func (m *ConjugationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConjugationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.verb != nil {
		fields = append(fields, conjugation.FieldVerbID)
	}
	if m.mood != nil {
		fields = append(fields, conjugation.FieldMood)
	}
	if m.tense != nil {
		fields = append(fields, conjugation.FieldTense)
	}
	if m.person != nil {
		fields = append(fields, conjugation.FieldPerson)
	}
	if m.form != nil {
		fields = append(fields, conjugation.FieldForm)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConjugationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conjugation.FieldVerbID:
		return m.VerbID()
	case conjugation.FieldMood:
		return m.Mood()
	case conjugation.FieldTense:
		return m.Tense()
	case conjugation.FieldPerson:
		return m.Person()
	case conjugation.FieldForm:
		return m.Form()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConjugationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conjugation.FieldVerbID:
		return m.OldVerbID(ctx)
	case conjugation.FieldMood:
		return m.OldMood(ctx)
	case conjugation.FieldTense:
		return m.OldTense(ctx)
	case conjugation.FieldPerson:
		return m.OldPerson(ctx)
	case conjugation.FieldForm:
		return m.OldForm(ctx)
	}
	return nil, fmt.Errorf("unknown Conjugation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConjugationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conjugation.FieldVerbID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerbID(v)
		return nil
	case conjugation.FieldMood:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMood(v)
		return nil
	case conjugation.FieldTense:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTense(v)
		return nil
	case conjugation.FieldPerson:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerson(v)
		return nil
	case conjugation.FieldForm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForm(v)
		return nil
	}
	return fmt.Errorf("unknown Conjugation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConjugationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConjugationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConjugationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conjugation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConjugationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConjugationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConjugationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Conjugation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConjugationMutation) ResetField(name string) error {
	switch name {
	case conjugation.FieldVerbID:
		m.ResetVerbID()
		return nil
	case conjugation.FieldMood:
		m.ResetMood()
		return nil
	case conjugation.FieldTense:
		m.ResetTense()
		return nil
	case conjugation.FieldPerson:
		m.ResetPerson()
		return nil
	case conjugation.FieldForm:
		m.ResetForm()
		return nil
	}
	return fmt.Errorf("unknown Conjugation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConjugationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verb != nil {
		edges = append(edges, conjugation.EdgeVerb)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConjugationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conjugation.EdgeVerb:
		if id := m.verb; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConjugationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConjugationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConjugationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverb {
		edges = append(edges, conjugation.EdgeVerb)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConjugationMutation) EdgeCleared(name string) bool {
	switch name {
	case conjugation.EdgeVerb:
		return m.clearedverb
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConjugationMutation) ClearEdge(name string) error {
	switch name {
	case conjugation.EdgeVerb:
		m.ClearVerb()
		return nil
	}
	return fmt.Errorf("unknown Conjugation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConjugationMutation) ResetEdge(name string) error {
	switch name {
	case conjugation.EdgeVerb:
		m.ResetVerb()
		return nil
	}
	return fmt.Errorf("unknown Conjugation edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PracticeStatMutation represents an operation that mutates the PracticeStat nodes in the graph.
type PracticeStatMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	question_id       *int
	addquestion_id    *int
	practice_count    *int
	addpractice_count *int
	rating            *int
	addrating         *int
	favorite          *bool
	last_practiced    *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PracticeStat, error)
	predicates        []predicate.PracticeStat
}

var _ ent.Mutation = (*PracticeStatMutation)(nil)

// practicestatOption allows management of the mutation configuration using functional options.
type practicestatOption func(*PracticeStatMutation)

// newPracticeStatMutation creates new mutation for the PracticeStat entity.
func newPracticeStatMutation(c config, op Op, opts ...practicestatOption) *PracticeStatMutation {
	m := &PracticeStatMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeStatID sets the ID field of the mutation.
func withPracticeStatID(id int) practicestatOption {
	return func(m *PracticeStatMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeStat
		)
		m.oldValue = func(ctx context.Context) (*PracticeStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeStat sets the old PracticeStat of the mutation.
func withPracticeStat(node *PracticeStat) practicestatOption {
	return func(m *PracticeStatMutation) {
		m.oldValue = func(context.Context) (*PracticeStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeStatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeStatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PracticeStatMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeStatMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeStatMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *PracticeStatMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *PracticeStatMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *PracticeStatMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *PracticeStatMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *PracticeStatMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetPracticeCount sets the "practice_count" field.
func (m *PracticeStatMutation) SetPracticeCount(i int) {
	m.practice_count = &i
	m.addpractice_count = nil
}

// PracticeCount returns the value of the "practice_count" field in the mutation.
func (m *PracticeStatMutation) PracticeCount() (r int, exists bool) {
	v := m.practice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCount returns the old "practice_count" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldPracticeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCount: %w", err)
	}
	return oldValue.PracticeCount, nil
}

// AddPracticeCount adds i to the "practice_count" field.
func (m *PracticeStatMutation) AddPracticeCount(i int) {
	if m.addpractice_count != nil {
		*m.addpractice_count += i
	} else {
		m.addpractice_count = &i
	}
}

// AddedPracticeCount returns the value that was added to the "practice_count" field in this mutation.
func (m *PracticeStatMutation) AddedPracticeCount() (r int, exists bool) {
	v := m.addpractice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCount resets all changes to the "practice_count" field.
func (m *PracticeStatMutation) ResetPracticeCount() {
	m.practice_count = nil
	m.addpractice_count = nil
}

// SetRating sets the "rating" field.
func (m *PracticeStatMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *PracticeStatMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *PracticeStatMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *PracticeStatMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *PracticeStatMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetFavorite sets the "favorite" field.
func (m *PracticeStatMutation) SetFavorite(b bool) {
	m.favorite = &b
}

// Favorite returns the value of the "favorite" field in the mutation.
func (m *PracticeStatMutation) Favorite() (r bool, exists bool) {
	v := m.favorite
	if v == nil {
		return
	}
	return *v, true
}

// OldFavorite returns the old "favorite" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldFavorite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFavorite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFavorite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFavorite: %w", err)
	}
	return oldValue.Favorite, nil
}

// ResetFavorite resets all changes to the "favorite" field.
func (m *PracticeStatMutation) ResetFavorite() {
	m.favorite = nil
}

// SetLastPracticed sets the "last_practiced" field.
func (m *PracticeStatMutation) SetLastPracticed(t time.Time) {
	m.last_practiced = &t
}

// LastPracticed returns the value of the "last_practiced" field in the mutation.
func (m *PracticeStatMutation) LastPracticed() (r time.Time, exists bool) {
	v := m.last_practiced
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticed returns the old "last_practiced" field's value of the PracticeStat entity.
// If the PracticeStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeStatMutation) OldLastPracticed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticed: %w", err)
	}
	return oldValue.LastPracticed, nil
}

// ResetLastPracticed resets all changes to the "last_practiced" field.
func (m *PracticeStatMutation) ResetLastPracticed() {
	m.last_practiced = nil
}

// Where appends a list predicates to the PracticeStatMutation builder.
func (m *PracticeStatMutation) Where(ps ...predicate.PracticeStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeStat).
func (m *PracticeStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeStatMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, practicestat.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, practicestat.FieldQuestionID)
	}
	if m.practice_count != nil {
		fields = append(fields, practicestat.FieldPracticeCount)
	}
	if m.rating != nil {
		fields = append(fields, practicestat.FieldRating)
	}
	if m.favorite != nil {
		fields = append(fields, practicestat.FieldFavorite)
	}
	if m.last_practiced != nil {
		fields = append(fields, practicestat.FieldLastPracticed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicestat.FieldUserID:
		return m.UserID()
	case practicestat.FieldQuestionID:
		return m.QuestionID()
	case practicestat.FieldPracticeCount:
		return m.PracticeCount()
	case practicestat.FieldRating:
		return m.Rating()
	case practicestat.FieldFavorite:
		return m.Favorite()
	case practicestat.FieldLastPracticed:
		return m.LastPracticed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicestat.FieldUserID:
		return m.OldUserID(ctx)
	case practicestat.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case practicestat.FieldPracticeCount:
		return m.OldPracticeCount(ctx)
	case practicestat.FieldRating:
		return m.OldRating(ctx)
	case practicestat.FieldFavorite:
		return m.OldFavorite(ctx)
	case practicestat.FieldLastPracticed:
		return m.OldLastPracticed(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicestat.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practicestat.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case practicestat.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCount(v)
		return nil
	case practicestat.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case practicestat.FieldFavorite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFavorite(v)
		return nil
	case practicestat.FieldLastPracticed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticed(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeStatMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_id != nil {
		fields = append(fields, practicestat.FieldQuestionID)
	}
	if m.addpractice_count != nil {
		fields = append(fields, practicestat.FieldPracticeCount)
	}
	if m.addrating != nil {
		fields = append(fields, practicestat.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicestat.FieldQuestionID:
		return m.AddedQuestionID()
	case practicestat.FieldPracticeCount:
		return m.AddedPracticeCount()
	case practicestat.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicestat.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case practicestat.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCount(v)
		return nil
	case practicestat.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeStatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeStatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PracticeStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeStatMutation) ResetField(name string) error {
	switch name {
	case practicestat.FieldUserID:
		m.ResetUserID()
		return nil
	case practicestat.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case practicestat.FieldPracticeCount:
		m.ResetPracticeCount()
		return nil
	case practicestat.FieldRating:
		m.ResetRating()
		return nil
	case practicestat.FieldFavorite:
		m.ResetFavorite()
		return nil
	case practicestat.FieldLastPracticed:
		m.ResetLastPracticed()
		return nil
	}
	return fmt.Errorf("unknown PracticeStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeStat edge %s", name)
}

// VerbMutation represents an operation that mutates the Verb nodes in the graph.
type VerbMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	infinitive           *string
	meaning              *string
	conjugation_class    *int
	addconjugation_class *int
	irregular            *bool
	reflexive            *bool
	transitive           *bool
	gerund               *string
	participle           *string
	clearedFields        map[string]struct{}
	conjugations         map[int]struct{}
	removedconjugations  map[int]struct{}
	clearedconjugations  bool
	questions            map[int]struct{}
	removedquestions     map[int]struct{}
	clearedquestions     bool
	done                 bool
	oldValue             func(context.Context) (*Verb, error)
	predicates           []predicate.Verb
}

var _ ent.Mutation = (*VerbMutation)(nil)

// verbOption allows management of the mutation configuration using functional options.
type verbOption func(*VerbMutation)

// newVerbMutation creates new mutation for the Verb entity.
func newVerbMutation(c config, op Op, opts ...verbOption) *VerbMutation {
	m := &VerbMutation{
		config:        c,
		op:            op,
		typ:           TypeVerb,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerbID sets the ID field of the mutation.
func withVerbID(id int) verbOption {
	return func(m *VerbMutation) {
		var (
			err   error
			once  sync.Once
			value *Verb
		)
		m.oldValue = func(ctx context.Context) (*Verb, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Verb.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerb sets the old Verb of the mutation.
func withVerb(node *Verb) verbOption {
	return func(m *VerbMutation) {
		m.oldValue = func(context.Context) (*Verb, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerbMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerbMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerbMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerbMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Verb.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInfinitive sets the "infinitive" field.
func (m *VerbMutation) SetInfinitive(s string) {
	m.infinitive = &s
}

// Infinitive returns the value of the "infinitive" field in the mutation.
func (m *VerbMutation) Infinitive() (r string, exists bool) {
	v := m.infinitive
	if v == nil {
		return
	}
	return *v, true
}

// OldInfinitive returns the old "infinitive" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldInfinitive(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfinitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfinitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfinitive: %w", err)
	}
	return oldValue.Infinitive, nil
}

// ResetInfinitive resets all changes to the "infinitive" field.
func (m *VerbMutation) ResetInfinitive() {
	m.infinitive = nil
}

// SetMeaning sets the "meaning" field.
func (m *VerbMutation) SetMeaning(s string) {
	m.meaning = &s
}

// Meaning returns the value of the "meaning" field in the mutation.
func (m *VerbMutation) Meaning() (r string, exists bool) {
	v := m.meaning
	if v == nil {
		return
	}
	return *v, true
}

// OldMeaning returns the old "meaning" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldMeaning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeaning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeaning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeaning: %w", err)
	}
	return oldValue.Meaning, nil
}

// ResetMeaning resets all changes to the "meaning" field.
func (m *VerbMutation) ResetMeaning() {
	m.meaning = nil
}

// SetConjugationClass sets the "conjugation_class" field.
func (m *VerbMutation) SetConjugationClass(i int) {
	m.conjugation_class = &i
	m.addconjugation_class = nil
}

// ConjugationClass returns the value of the "conjugation_class" field in the mutation.
func (m *VerbMutation) ConjugationClass() (r int, exists bool) {
	v := m.conjugation_class
	if v == nil {
		return
	}
	return *v, true
}

// OldConjugationClass returns the old "conjugation_class" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldConjugationClass(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConjugationClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConjugationClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConjugationClass: %w", err)
	}
	return oldValue.ConjugationClass, nil
}

// AddConjugationClass adds i to the "conjugation_class" field.
func (m *VerbMutation) AddConjugationClass(i int) {
	if m.addconjugation_class != nil {
		*m.addconjugation_class += i
	} else {
		m.addconjugation_class = &i
	}
}

// AddedConjugationClass returns the value that was added to the "conjugation_class" field in this mutation.
func (m *VerbMutation) AddedConjugationClass() (r int, exists bool) {
	v := m.addconjugation_class
	if v == nil {
		return
	}
	return *v, true
}

// ResetConjugationClass resets all changes to the "conjugation_class" field.
func (m *VerbMutation) ResetConjugationClass() {
	m.conjugation_class = nil
	m.addconjugation_class = nil
}

// SetIrregular sets the "irregular" field.
func (m *VerbMutation) SetIrregular(b bool) {
	m.irregular = &b
}

// Irregular returns the value of the "irregular" field in the mutation.
func (m *VerbMutation) Irregular() (r bool, exists bool) {
	v := m.irregular
	if v == nil {
		return
	}
	return *v, true
}

// OldIrregular returns the old "irregular" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldIrregular(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrregular is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrregular requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrregular: %w", err)
	}
	return oldValue.Irregular, nil
}

// ResetIrregular resets all changes to the "irregular" field.
func (m *VerbMutation) ResetIrregular() {
	m.irregular = nil
}

// SetReflexive sets the "reflexive" field.
func (m *VerbMutation) SetReflexive(b bool) {
	m.reflexive = &b
}

// Reflexive returns the value of the "reflexive" field in the mutation.
func (m *VerbMutation) Reflexive() (r bool, exists bool) {
	v := m.reflexive
	if v == nil {
		return
	}
	return *v, true
}

// OldReflexive returns the old "reflexive" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldReflexive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReflexive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReflexive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReflexive: %w", err)
	}
	return oldValue.Reflexive, nil
}

// ResetReflexive resets all changes to the "reflexive" field.
func (m *VerbMutation) ResetReflexive() {
	m.reflexive = nil
}

// SetTransitive sets the "transitive" field.
func (m *VerbMutation) SetTransitive(b bool) {
	m.transitive = &b
}

// Transitive returns the value of the "transitive" field in the mutation.
func (m *VerbMutation) Transitive() (r bool, exists bool) {
	v := m.transitive
	if v == nil {
		return
	}
	return *v, true
}

// OldTransitive returns the old "transitive" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldTransitive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransitive: %w", err)
	}
	return oldValue.Transitive, nil
}

// ResetTransitive resets all changes to the "transitive" field.
func (m *VerbMutation) ResetTransitive() {
	m.transitive = nil
}

// SetGerund sets the "gerund" field.
func (m *VerbMutation) SetGerund(s string) {
	m.gerund = &s
}

// Gerund returns the value of the "gerund" field in the mutation.
func (m *VerbMutation) Gerund() (r string, exists bool) {
	v := m.gerund
	if v == nil {
		return
	}
	return *v, true
}

// OldGerund returns the old "gerund" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldGerund(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGerund is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGerund requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGerund: %w", err)
	}
	return oldValue.Gerund, nil
}

// ResetGerund resets all changes to the "gerund" field.
func (m *VerbMutation) ResetGerund() {
	m.gerund = nil
}

// SetParticiple sets the "participle" field.
func (m *VerbMutation) SetParticiple(s string) {
	m.participle = &s
}

// Participle returns the value of the "participle" field in the mutation.
func (m *VerbMutation) Participle() (r string, exists bool) {
	v := m.participle
	if v == nil {
		return
	}
	return *v, true
}

// OldParticiple returns the old "participle" field's value of the Verb entity.
// If the Verb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerbMutation) OldParticiple(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticiple is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticiple requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticiple: %w", err)
	}
	return oldValue.Participle, nil
}

// ResetParticiple resets all changes to the "participle" field.
func (m *VerbMutation) ResetParticiple() {
	m.participle = nil
}

// AddConjugationIDs adds the "conjugations" edge to the Conjugation entity by ids.
func (m *VerbMutation) AddConjugationIDs(ids ...int) {
	if m.conjugations == nil {
		m.conjugations = make(map[int]struct{})
	}
	for i := range ids {
		m.conjugations[ids[i]] = struct{}{}
	}
}

// ClearConjugations clears the "conjugations" edge to the Conjugation entity.
func (m *VerbMutation) ClearConjugations() {
	m.clearedconjugations = true
}

// ConjugationsCleared reports if the "conjugations" edge to the Conjugation entity was cleared.
func (m *VerbMutation) ConjugationsCleared() bool {
	return m.clearedconjugations
}

// RemoveConjugationIDs removes the "conjugations" edge to the Conjugation entity by IDs.
func (m *VerbMutation) RemoveConjugationIDs(ids ...int) {
	if m.removedconjugations == nil {
		m.removedconjugations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conjugations, ids[i])
		m.removedconjugations[ids[i]] = struct{}{}
	}
}

// RemovedConjugations returns the removed IDs of the "conjugations" edge to the Conjugation entity.
func (m *VerbMutation) RemovedConjugationsIDs() (ids []int) {
	for id := range m.removedconjugations {
		ids = append(ids, id)
	}
	return
}

// ConjugationsIDs returns the "conjugations" edge IDs in the mutation.
func (m *VerbMutation) ConjugationsIDs() (ids []int) {
	for id := range m.conjugations {
		ids = append(ids, id)
	}
	return
}

// ResetConjugations resets all changes to the "conjugations" edge.
func (m *VerbMutation) ResetConjugations() {
	m.conjugations = nil
	m.clearedconjugations = false
	m.removedconjugations = nil
}

// AddQuestionIDs adds the "questions" edge to the BankQuestion entity by ids.
func (m *VerbMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the BankQuestion entity.
func (m *VerbMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the BankQuestion entity was cleared.
func (m *VerbMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the BankQuestion entity by IDs.
func (m *VerbMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the BankQuestion entity.
func (m *VerbMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *VerbMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *VerbMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the VerbMutation builder.
func (m *VerbMutation) Where(ps ...predicate.Verb) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerbMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerbMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Verb, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerbMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerbMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Verb).
func (m *VerbMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerbMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.infinitive != nil {
		fields = append(fields, verb.FieldInfinitive)
	}
	if m.meaning != nil {
		fields = append(fields, verb.FieldMeaning)
	}
	if m.conjugation_class != nil {
		fields = append(fields, verb.FieldConjugationClass)
	}
	if m.irregular != nil {
		fields = append(fields, verb.FieldIrregular)
	}
	if m.reflexive != nil {
		fields = append(fields, verb.FieldReflexive)
	}
	if m.transitive != nil {
		fields = append(fields, verb.FieldTransitive)
	}
	if m.gerund != nil {
		fields = append(fields, verb.FieldGerund)
	}
	if m.participle != nil {
		fields = append(fields, verb.FieldParticiple)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerbMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verb.FieldInfinitive:
		return m.Infinitive()
	case verb.FieldMeaning:
		return m.Meaning()
	case verb.FieldConjugationClass:
		return m.ConjugationClass()
	case verb.FieldIrregular:
		return m.Irregular()
	case verb.FieldReflexive:
		return m.Reflexive()
	case verb.FieldTransitive:
		return m.Transitive()
	case verb.FieldGerund:
		return m.Gerund()
	case verb.FieldParticiple:
		return m.Participle()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerbMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verb.FieldInfinitive:
		return m.OldInfinitive(ctx)
	case verb.FieldMeaning:
		return m.OldMeaning(ctx)
	case verb.FieldConjugationClass:
		return m.OldConjugationClass(ctx)
	case verb.FieldIrregular:
		return m.OldIrregular(ctx)
	case verb.FieldReflexive:
		return m.OldReflexive(ctx)
	case verb.FieldTransitive:
		return m.OldTransitive(ctx)
	case verb.FieldGerund:
		return m.OldGerund(ctx)
	case verb.FieldParticiple:
		return m.OldParticiple(ctx)
	}
	return nil, fmt.Errorf("unknown Verb field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerbMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verb.FieldInfinitive:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfinitive(v)
		return nil
	case verb.FieldMeaning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeaning(v)
		return nil
	case verb.FieldConjugationClass:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConjugationClass(v)
		return nil
	case verb.FieldIrregular:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrregular(v)
		return nil
	case verb.FieldReflexive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReflexive(v)
		return nil
	case verb.FieldTransitive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransitive(v)
		return nil
	case verb.FieldGerund:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGerund(v)
		return nil
	case verb.FieldParticiple:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticiple(v)
		return nil
	}
	return fmt.Errorf("unknown Verb field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerbMutation) AddedFields() []string {
	var fields []string
	if m.addconjugation_class != nil {
		fields = append(fields, verb.FieldConjugationClass)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerbMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verb.FieldConjugationClass:
		return m.AddedConjugationClass()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerbMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verb.FieldConjugationClass:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConjugationClass(v)
		return nil
	}
	return fmt.Errorf("unknown Verb numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerbMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerbMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerbMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Verb nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerbMutation) ResetField(name string) error {
	switch name {
	case verb.FieldInfinitive:
		m.ResetInfinitive()
		return nil
	case verb.FieldMeaning:
		m.ResetMeaning()
		return nil
	case verb.FieldConjugationClass:
		m.ResetConjugationClass()
		return nil
	case verb.FieldIrregular:
		m.ResetIrregular()
		return nil
	case verb.FieldReflexive:
		m.ResetReflexive()
		return nil
	case verb.FieldTransitive:
		m.ResetTransitive()
		return nil
	case verb.FieldGerund:
		m.ResetGerund()
		return nil
	case verb.FieldParticiple:
		m.ResetParticiple()
		return nil
	}
	return fmt.Errorf("unknown Verb field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerbMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conjugations != nil {
		edges = append(edges, verb.EdgeConjugations)
	}
	if m.questions != nil {
		edges = append(edges, verb.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerbMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verb.EdgeConjugations:
		ids := make([]ent.Value, 0, len(m.conjugations))
		for id := range m.conjugations {
			ids = append(ids, id)
		}
		return ids
	case verb.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerbMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedconjugations != nil {
		edges = append(edges, verb.EdgeConjugations)
	}
	if m.removedquestions != nil {
		edges = append(edges, verb.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerbMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case verb.EdgeConjugations:
		ids := make([]ent.Value, 0, len(m.removedconjugations))
		for id := range m.removedconjugations {
			ids = append(ids, id)
		}
		return ids
	case verb.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerbMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconjugations {
		edges = append(edges, verb.EdgeConjugations)
	}
	if m.clearedquestions {
		edges = append(edges, verb.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerbMutation) EdgeCleared(name string) bool {
	switch name {
	case verb.EdgeConjugations:
		return m.clearedconjugations
	case verb.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerbMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Verb unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerbMutation) ResetEdge(name string) error {
	switch name {
	case verb.EdgeConjugations:
		m.ResetConjugations()
		return nil
	case verb.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Verb edge %s", name)
}

package qgen

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/conjugo/internal/store"
)

// Inserter is the slice of the question store the machine needs: the
// de-duplicating insert of an accepted question.
type Inserter interface {
	Insert(ctx context.Context, q *store.Question) (int, error)
}

// Config bounds one acceptance run.
type Config struct {
	// MaxRetries is the number of full draft→accept/reject attempts
	// per target.
	MaxRetries int

	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
}

// DefaultConfig returns the standard retry policy.
func DefaultConfig() Config {
	return Config{MaxRetries: 3, Backoff: time.Second}
}

// maxDraftTries bounds the regenerate loop inside one attempt. Drafts
// that fail structural checks (or the backend call itself) are redrawn
// without spending a validator call, up to this many times.
const maxDraftTries = 3

// Outcome reports the result of one acceptance run.
type Outcome struct {
	Accepted    bool
	QuestionID  int
	Question    *store.Question
	UsedRevisor bool
	Attempts    int
	LastReason  string
}

// Machine drives the generate→validate→revise→validate protocol for
// one target and decides accept or reject.
//
// States per attempt: Draft → Validating1 → Accepted, or
// Draft → Validating1 → Revising → Validating2 → Accepted/Rejected.
// An attempt spends at most two validator calls and one revise call.
type Machine struct {
	stages *Stages
	bank   Inserter // nil skips persistence (preview runs)
	cfg    Config
}

// NewMachine creates an acceptance machine. A nil bank disables the
// write-back of accepted questions.
func NewMachine(stages *Stages, bank Inserter, cfg Config) *Machine {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	return &Machine{stages: stages, bank: bank, cfg: cfg}
}

// Run executes up to MaxRetries attempts for the target. Exhaustion is
// reported in the Outcome, not as an error; the only error returns are
// context cancellation and a failed store write.
func (m *Machine) Run(ctx context.Context, verb *store.Verb, target Target) (*Outcome, error) {
	out := &Outcome{}

	for attempt := 1; attempt <= m.cfg.MaxRetries; attempt++ {
		if attempt > 1 && m.cfg.Backoff > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(m.cfg.Backoff):
			}
		}
		out.Attempts = attempt

		draft, usedRevisor, reason := m.attempt(ctx, verb, target)
		if draft == nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			out.LastReason = reason
			continue
		}

		q := buildQuestion(verb, target, draft)
		if m.bank != nil {
			id, err := m.bank.Insert(ctx, q)
			if err != nil {
				return nil, err
			}
			q.ID = id
			out.QuestionID = id
		}

		out.Accepted = true
		out.Question = q
		out.UsedRevisor = usedRevisor
		out.LastReason = ""
		return out, nil
	}

	return out, nil
}

// attempt runs one full pass of the state machine. A nil draft means
// the attempt was rejected for the returned reason.
func (m *Machine) attempt(ctx context.Context, verb *store.Verb, target Target) (*DraftQuestion, bool, string) {
	draft, reason := m.draw(ctx, verb, target)
	if draft == nil {
		return nil, false, reason
	}

	verdict, err := m.stages.Validate(ctx, verb, target, draft)
	if err != nil {
		return nil, false, err.Error()
	}
	if verdict.Passed() {
		return draft, false, ""
	}

	// One-shot escalation: revise, re-check structure, validate again.
	patch, err := m.stages.Revise(ctx, verb, target, draft, verdict)
	if err != nil {
		return nil, false, err.Error()
	}

	revised := *draft
	revised.Sentence = patch.Sentence
	if patch.Translation != "" {
		revised.Translation = patch.Translation
	}
	if err := checkDraft(target, &revised); err != nil {
		return nil, false, "revision failed structural check: " + err.Error()
	}

	verdict, err = m.stages.Validate(ctx, verb, target, &revised)
	if err != nil {
		return nil, false, err.Error()
	}
	if verdict.Passed() {
		return &revised, true, ""
	}
	return nil, false, rejectionReason(verdict)
}

// draw generates drafts until one passes the structural checks,
// without spending any validator calls. Backend failures count against
// the same budget as structural rejections.
func (m *Machine) draw(ctx context.Context, verb *store.Verb, target Target) (*DraftQuestion, string) {
	var lastReason string
	for try := 0; try < maxDraftTries; try++ {
		draft, err := m.stages.Generate(ctx, verb, target)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err.Error()
			}
			lastReason = err.Error()
			continue
		}
		if err := checkDraft(target, draft); err != nil {
			lastReason = err.Error()
			continue
		}
		return draft, ""
	}
	return nil, lastReason
}

func rejectionReason(v *Verdict) string {
	if v.Reason != "" {
		return v.Reason
	}
	if !v.Valid {
		return "validator rejected the draft"
	}
	return "validator found the answer not unique"
}

// buildQuestion maps an accepted draft onto a bank entry. The
// grammatical target fields come from the target, not the draft: they
// are immutable and authoritative.
func buildQuestion(verb *store.Verb, target Target, draft *DraftQuestion) *store.Question {
	return &store.Question{
		VerbID:        verb.ID,
		Kind:          string(target.Kind),
		Mood:          target.Mood,
		Tense:         target.Tense,
		Person:        target.Person,
		HostForm:      target.HostForm,
		CliticPattern: draft.CliticPattern,
		IOClitic:      draft.IOClitic,
		DOClitic:      draft.DOClitic,
		Sentence:      draft.Sentence,
		Answer:        draft.Answer,
		Translation:   draft.Translation,
		Hint:          draft.Hint,
		Confidence:    50,

		Infinitive:       verb.Infinitive,
		Meaning:          verb.Meaning,
		ConjugationClass: verb.ConjugationClass,
		Irregular:        verb.Irregular,
	}
}

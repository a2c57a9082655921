package qgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/conjugo/internal/llm"
	"github.com/abhisek/conjugo/internal/store"
)

// Purpose labels attached to stage calls for event logging.
const (
	PurposeGenerate = "generate"
	PurposeValidate = "validate"
	PurposeRevise   = "revise"
)

// Stages groups the three pipeline stage adapters around one backend
// provider. Each adapter issues a single call and normalizes the
// response into its fixed field set, failing closed on missing data.
type Stages struct {
	provider llm.Provider
}

// NewStages creates stage adapters on top of the given provider.
func NewStages(p llm.Provider) *Stages {
	return &Stages{provider: p}
}

type draftWire struct {
	CueStrategy    string   `json:"cue_strategy"`
	Sentence       string   `json:"sentence"`
	AnswerVariants []string `json:"answer_variants"`
	Answer         string   `json:"answer"`
	Translation    string   `json:"translation"`
	Hint           string   `json:"hint"`

	HostForm       string `json:"host_form"`
	PronounPattern string `json:"pronoun_pattern"`
	Mood           string `json:"mood"`
	Tense          string `json:"tense"`
	Person         string `json:"person"`
	IOPronoun      string `json:"io_pronoun"`
	DOPronoun      string `json:"do_pronoun"`
}

type verdictWire struct {
	IsValid         bool          `json:"isValid"`
	HasUniqueAnswer bool          `json:"hasUniqueAnswer"`
	Reason          string        `json:"reason"`
	FailureTags     []string      `json:"failure_tags"`
	Alternatives    []Alternative `json:"alternatives"`
	RewriteAdvice   []string      `json:"rewrite_advice"`
}

type revisionWire struct {
	Sentence      string `json:"sentence"`
	Translation   string `json:"translation"`
	RevisorReason string `json:"revisor_reason"`
}

// Generate asks the backend for a fresh draft question for the target.
func (s *Stages) Generate(ctx context.Context, verb *store.Verb, target Target) (*DraftQuestion, error) {
	var system, user string
	if target.Kind == KindPronoun {
		system, user = pronounGeneratorPrompt(verb, target)
	} else {
		system, user = plainGeneratorPrompt(verb, target)
	}

	var wire draftWire
	if err := s.call(ctx, PurposeGenerate, system, user, draftSchema(target.Kind), llm.GeneratorSettings, &wire); err != nil {
		return nil, err
	}

	draft := &DraftQuestion{
		Sentence:    strings.TrimSpace(wire.Sentence),
		Answer:      strings.TrimSpace(wire.Answer),
		Translation: strings.TrimSpace(wire.Translation),
		Hint:        strings.TrimSpace(wire.Hint),
		CueStrategy: strings.TrimSpace(wire.CueStrategy),
	}

	if target.Kind == KindPronoun {
		draft.HostForm = strings.ToLower(strings.TrimSpace(wire.HostForm))
		draft.CliticPattern = strings.ToUpper(strings.TrimSpace(wire.PronounPattern))
		draft.IOClitic = strings.TrimSpace(wire.IOPronoun)
		draft.DOClitic = strings.TrimSpace(wire.DOPronoun)
		draft.Mood = strings.TrimSpace(wire.Mood)
		draft.Tense = strings.TrimSpace(wire.Tense)
		draft.Person = strings.TrimSpace(wire.Person)
		return draft, nil
	}

	// Plain bank: the conjugation table stays authoritative for the
	// answer when the model leaves it out.
	if draft.Answer == "" {
		draft.Answer = target.Answer
	}
	if len(wire.AnswerVariants) > 0 {
		draft.AnswerVariants = trimAll(wire.AnswerVariants)
	} else {
		draft.AnswerVariants = splitVariants(draft.Answer)
	}
	return draft, nil
}

// Validate asks the backend to judge a draft against its target.
func (s *Stages) Validate(ctx context.Context, verb *store.Verb, target Target, draft *DraftQuestion) (*Verdict, error) {
	var system, user string
	if target.Kind == KindPronoun {
		system, user = pronounValidatorPrompt(verb, target, draft)
	} else {
		system, user = plainValidatorPrompt(verb, target, draft)
	}

	var wire verdictWire
	if err := s.call(ctx, PurposeValidate, system, user, verdictSchema(target.Kind), llm.ValidatorSettings, &wire); err != nil {
		return nil, err
	}

	return &Verdict{
		Valid:         wire.IsValid,
		UniqueAnswer:  wire.HasUniqueAnswer,
		Reason:        strings.TrimSpace(wire.Reason),
		FailureTags:   wire.FailureTags,
		Alternatives:  wire.Alternatives,
		RewriteAdvice: wire.RewriteAdvice,
	}, nil
}

// Revise asks for a minimally changed sentence/translation addressing
// the verdict. All other draft fields are preserved by contract.
func (s *Stages) Revise(ctx context.Context, verb *store.Verb, target Target, draft *DraftQuestion, verdict *Verdict) (*RevisionPatch, error) {
	system, user := revisorPrompt(verb, target, draft, verdict)

	var wire revisionWire
	if err := s.call(ctx, PurposeRevise, system, user, revisionSchema(), llm.RevisorSettings, &wire); err != nil {
		return nil, err
	}

	patch := &RevisionPatch{
		Sentence:    strings.TrimSpace(wire.Sentence),
		Translation: strings.TrimSpace(wire.Translation),
		Reason:      strings.TrimSpace(wire.RevisorReason),
	}
	if patch.Sentence == "" {
		return nil, fmt.Errorf("revision returned an empty sentence")
	}
	return patch, nil
}

func (s *Stages) call(ctx context.Context, purpose, system, user string, schema *llm.Schema, settings llm.StageSettings, out any) error {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      schema,
		MaxTokens:   settings.MaxTokens,
		Temperature: settings.Temperature,
	})
	if err != nil {
		return fmt.Errorf("%s stage: %w", purpose, err)
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("%s stage: parse response: %w", purpose, err)
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

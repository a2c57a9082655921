// Package pool assembles delivery plans: batches of bank questions
// topped up with deferred generation jobs for whatever the bank cannot
// supply.
package pool

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/conjugo/internal/qgen"
	"github.com/abhisek/conjugo/internal/selector"
	"github.com/abhisek/conjugo/internal/store"
)

// mainShare is the percentage of a fully bank-served batch delivered as
// main items; the rest ships as lower-priority backup filler.
const mainShare = 85

// SelectorSource ranks bank candidates for a user.
type SelectorSource interface {
	Select(ctx context.Context, userID, kind string, c selector.Criteria, count int) ([]store.Question, error)
}

// VerbSource samples verbs and their conjugation tables for deferred
// generation jobs.
type VerbSource interface {
	Random(ctx context.Context, n int, f store.VerbFilter) ([]store.Verb, error)
	Conjugations(ctx context.Context, verbID int) ([]store.Conjugation, error)
}

// BatchSpec describes one batch request.
type BatchSpec struct {
	// Kinds lists the bank kinds to draw from. Two kinds split the
	// count half and half, remainder to the first.
	Kinds []string

	Criteria selector.Criteria
	Count    int
}

// Job is one deferred generation unit: the acceptance machine input
// for a slot the bank could not serve.
type Job struct {
	Verb   store.Verb
	Target qgen.Target
}

// DeliveryPlan is the assembler's output for one batch request.
type DeliveryPlan struct {
	ID              string
	Main            []store.Question
	Backup          []store.Question
	Deferred        []Job
	HasEnoughInBank bool
}

// Assembler builds delivery plans from the selector and, on shortfall,
// the verb dictionary.
type Assembler struct {
	selector SelectorSource
	verbs    VerbSource

	shuffle func(n int, swap func(i, j int))
	intn    func(n int) int
}

// New creates an Assembler.
func New(sel SelectorSource, verbs VerbSource) *Assembler {
	return &Assembler{
		selector: sel,
		verbs:    verbs,
		shuffle:  rand.Shuffle,
		intn:     rand.IntN,
	}
}

// Build assembles the delivery plan for one batch request. Deferred
// jobs are described, never executed here; running them is the
// caller's choice.
func (a *Assembler) Build(ctx context.Context, userID string, spec BatchSpec) (*DeliveryPlan, error) {
	if spec.Count <= 0 {
		return nil, fmt.Errorf("batch count must be positive")
	}
	kinds := spec.Kinds
	if len(kinds) == 0 {
		kinds = []string{string(qgen.KindSentence)}
	}

	plan := &DeliveryPlan{ID: uuid.NewString(), HasEnoughInBank: true}

	share := spec.Count / len(kinds)
	remainder := spec.Count % len(kinds)
	for i, kind := range kinds {
		n := share
		if i == 0 {
			n += remainder
		}
		if n == 0 {
			continue
		}
		if err := a.fill(ctx, userID, kind, spec.Criteria, n, plan); err != nil {
			return nil, err
		}
	}

	// Interleave bank kinds randomly in the delivered pool.
	a.shuffle(len(plan.Main), func(i, j int) {
		plan.Main[i], plan.Main[j] = plan.Main[j], plan.Main[i]
	})
	return plan, nil
}

// fill serves n slots of one kind into the plan.
func (a *Assembler) fill(ctx context.Context, userID, kind string, c selector.Criteria, n int, plan *DeliveryPlan) error {
	hits, err := a.selector.Select(ctx, userID, kind, c, n)
	if err != nil {
		return fmt.Errorf("select %s candidates: %w", kind, err)
	}

	if len(hits) >= n {
		hits = hits[:n]
		mainN := n * mainShare / 100
		if mainN == 0 {
			mainN = 1
		}
		plan.Main = append(plan.Main, hits[:mainN]...)
		plan.Backup = append(plan.Backup, hits[mainN:]...)
		return nil
	}

	// Shortfall: everything found goes out as main, the missing slots
	// become deferred generation jobs.
	plan.HasEnoughInBank = false
	plan.Main = append(plan.Main, hits...)

	jobs, err := a.planJobs(ctx, kind, c, n-len(hits))
	if err != nil {
		return err
	}
	plan.Deferred = append(plan.Deferred, jobs...)
	return nil
}

// PlanJobs describes k generation targets of one kind without
// consulting the bank. Ad-hoc generation (the gen command) uses this
// to build work the same way a shortfall would.
func (a *Assembler) PlanJobs(ctx context.Context, kind string, c selector.Criteria, k int) ([]Job, error) {
	return a.planJobs(ctx, kind, c, k)
}

// planJobs describes k generation targets of the given kind. Fewer
// than k come back when the dictionary cannot serve the filter.
func (a *Assembler) planJobs(ctx context.Context, kind string, c selector.Criteria, k int) ([]Job, error) {
	verbs, err := a.verbs.Random(ctx, k, store.VerbFilter{
		Classes:     c.Classes,
		OnlyRegular: c.OnlyRegular,
	})
	if err != nil {
		return nil, fmt.Errorf("sample verbs: %w", err)
	}
	if len(verbs) == 0 {
		return nil, nil
	}

	jobs := make([]Job, 0, k)
	for i := 0; i < k; i++ {
		verb := verbs[i%len(verbs)]
		target, ok, err := a.planTarget(ctx, kind, c, &verb)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		jobs = append(jobs, Job{Verb: verb, Target: target})
	}
	return jobs, nil
}

func (a *Assembler) planTarget(ctx context.Context, kind string, c selector.Criteria, verb *store.Verb) (qgen.Target, bool, error) {
	cells, err := a.verbs.Conjugations(ctx, verb.ID)
	if err != nil {
		return qgen.Target{}, false, fmt.Errorf("conjugations for %s: %w", verb.Infinitive, err)
	}
	cells = filterCells(cells, c)
	if len(cells) == 0 {
		return qgen.Target{}, false, nil
	}
	cell := cells[a.intn(len(cells))]

	target := qgen.Target{
		Kind:   qgen.BankKind(kind),
		Mood:   cell.Mood,
		Tense:  cell.Tense,
		Person: cell.Person,
		Answer: cell.Form,
	}
	if kind != string(qgen.KindPronoun) {
		return target, true, nil
	}

	target.HostForm = a.pickHostForm(c, verb)
	target.BaseForm = baseFormFor(target.HostForm, verb, cell)
	return target, true, nil
}

// filterCells applies the tense/mood filters and the regional person
// policy to a conjugation table.
func filterCells(cells []store.Conjugation, c selector.Criteria) []store.Conjugation {
	out := cells[:0:0]
	for _, cell := range cells {
		if len(c.Moods) > 0 && !contains(c.Moods, cell.Mood) {
			continue
		}
		if len(c.Tenses) > 0 && !contains(c.Tenses, cell.Tense) {
			continue
		}
		p := strings.ToLower(cell.Person)
		if !c.IncludeVosotros && strings.Contains(p, "vosotr") {
			continue
		}
		if !c.IncludeVos && (p == "vos" || strings.HasPrefix(p, "vos/")) {
			continue
		}
		out = append(out, cell)
	}
	return out
}

func (a *Assembler) pickHostForm(c selector.Criteria, verb *store.Verb) string {
	forms := c.HostForms
	if len(forms) == 0 {
		forms = []string{qgen.HostFinite, qgen.HostImperative, qgen.HostInfinitive, qgen.HostGerund}
		if verb.Reflexive {
			forms = append(forms, qgen.HostPrnl)
		}
	}
	return forms[a.intn(len(forms))]
}

// baseFormFor names the clitic host without any attached pronouns.
func baseFormFor(hostForm string, verb *store.Verb, cell store.Conjugation) string {
	switch hostForm {
	case qgen.HostInfinitive, qgen.HostPrnl:
		return verb.Infinitive
	case qgen.HostGerund:
		if verb.Gerund != "" {
			return verb.Gerund
		}
		return verb.Infinitive
	default:
		// finite and imperative ride on the sampled cell; several
		// interchangeable spellings keep only the first.
		if i := strings.Index(cell.Form, "|"); i >= 0 {
			return strings.TrimSpace(cell.Form[:i])
		}
		return cell.Form
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

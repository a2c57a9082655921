package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/conjugo/internal/llm"
	"github.com/abhisek/conjugo/internal/pool"
	"github.com/abhisek/conjugo/internal/qgen"
	"github.com/abhisek/conjugo/internal/selector"
	"github.com/abhisek/conjugo/internal/store"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate, validate, and optionally bank new questions",
	Long:  "Plans generation targets from the verb dictionary and runs each through the generate/validate/revise loop. Accepted questions are printed; pass --save to persist them to the bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		kind, _ := cmd.Flags().GetString("kind")
		count, _ := cmd.Flags().GetInt("count")
		moods, _ := cmd.Flags().GetStringSlice("mood")
		tenses, _ := cmd.Flags().GetStringSlice("tense")
		onlyRegular, _ := cmd.Flags().GetBool("regular")
		save, _ := cmd.Flags().GetBool("save")

		if kind != string(qgen.KindSentence) && kind != string(qgen.KindPronoun) {
			return fmt.Errorf("unknown kind %q (want %s or %s)", kind, qgen.KindSentence, qgen.KindPronoun)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		assembler := pool.New(selector.New(st.QuestionRepo(), st.StatRepo()), st.VerbRepo())
		criteria := selector.Criteria{
			QuestionFilter: store.QuestionFilter{Moods: moods, Tenses: tenses, OnlyRegular: onlyRegular},
		}
		jobs, err := assembler.PlanJobs(ctx, kind, criteria, count)
		if err != nil {
			return fmt.Errorf("plan generation targets: %w", err)
		}
		if len(jobs) == 0 {
			fmt.Println("No matching verbs in the dictionary. Import some with `conjugo import`.")
			return nil
		}

		var inserter qgen.Inserter
		if save {
			inserter = st.QuestionRepo()
		}
		machine := qgen.NewMachine(qgen.NewStages(provider), inserter, qgen.DefaultConfig())

		accepted := 0
		for i, job := range jobs {
			fmt.Printf("[%d/%d] %s — %s %s %s\n",
				i+1, len(jobs), job.Verb.Infinitive, job.Target.Mood, job.Target.Tense, job.Target.Person)

			out, err := machine.Run(ctx, &job.Verb, job.Target)
			if err != nil {
				return fmt.Errorf("generate for %s: %w", job.Verb.Infinitive, err)
			}
			if !out.Accepted {
				fmt.Printf("  rejected after %d attempt(s): %s\n", out.Attempts, out.LastReason)
				continue
			}
			accepted++
			printDraft(out, save)
		}

		fmt.Printf("\n%d of %d accepted\n", accepted, len(jobs))
		return nil
	},
}

func printDraft(out *qgen.Outcome, saved bool) {
	q := out.Question
	fmt.Printf("  %s\n", q.Sentence)
	fmt.Printf("  answer: %s\n", q.Answer)
	if q.Translation != "" {
		fmt.Printf("  translation: %s\n", q.Translation)
	}
	notes := []string{fmt.Sprintf("attempts %d", out.Attempts)}
	if out.UsedRevisor {
		notes = append(notes, "revised")
	}
	if saved {
		notes = append(notes, fmt.Sprintf("banked as #%d", out.QuestionID))
	}
	fmt.Printf("  (%s)\n", strings.Join(notes, ", "))
}

func init() {
	genCmd.Flags().StringP("kind", "k", string(qgen.KindSentence), "Bank kind: sentence or pronoun")
	genCmd.Flags().IntP("count", "n", 1, "Number of questions to generate")
	genCmd.Flags().StringSlice("mood", nil, "Restrict to these moods")
	genCmd.Flags().StringSlice("tense", nil, "Restrict to these tenses")
	genCmd.Flags().Bool("regular", false, "Only use regular verbs")
	genCmd.Flags().Bool("save", false, "Persist accepted questions to the bank")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/conjugo/internal/pool"
	"github.com/abhisek/conjugo/internal/selector"
	"github.com/abhisek/conjugo/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Assemble a delivery plan from the bank",
	Long:  "Selects a batch of drills for a user, splitting bank hits into a main pool and a backup reserve. Slots the bank cannot fill are listed as deferred generation jobs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, _ := cmd.Flags().GetString("user")
		count, _ := cmd.Flags().GetInt("count")
		kinds, _ := cmd.Flags().GetStringSlice("kind")
		moods, _ := cmd.Flags().GetStringSlice("mood")
		tenses, _ := cmd.Flags().GetStringSlice("tense")
		vos, _ := cmd.Flags().GetBool("vos")
		vosotros, _ := cmd.Flags().GetBool("vosotros")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		assembler := pool.New(selector.New(st.QuestionRepo(), st.StatRepo()), st.VerbRepo())
		plan, err := assembler.Build(ctx, userID, pool.BatchSpec{
			Kinds: kinds,
			Count: count,
			Criteria: selector.Criteria{
				QuestionFilter:  store.QuestionFilter{Moods: moods, Tenses: tenses},
				IncludeVos:      vos,
				IncludeVosotros: vosotros,
			},
		})
		if err != nil {
			return fmt.Errorf("assemble plan: %w", err)
		}

		fmt.Printf("Plan %s\n", plan.ID)
		if !plan.HasEnoughInBank {
			fmt.Println("Bank shortfall: some slots deferred to generation.")
		}

		printQuestions("Main", plan.Main)
		printQuestions("Backup", plan.Backup)

		if len(plan.Deferred) > 0 {
			fmt.Printf("\nDeferred (%d)\n", len(plan.Deferred))
			fmt.Println(strings.Repeat("─", 60))
			for _, job := range plan.Deferred {
				slot := fmt.Sprintf("%s %s %s", job.Target.Mood, job.Target.Tense, job.Target.Person)
				if job.Target.HostForm != "" {
					slot += " (" + job.Target.HostForm + ")"
				}
				fmt.Printf("%-16s  %-8s  %s\n", job.Verb.Infinitive, job.Target.Kind, slot)
			}
		}
		return nil
	},
}

func printQuestions(label string, qs []store.Question) {
	if len(qs) == 0 {
		return
	}
	fmt.Printf("\n%s (%d)\n", label, len(qs))
	fmt.Println(strings.Repeat("─", 60))
	for _, q := range qs {
		fmt.Printf("#%-5d %-16s conf %3d  %s\n", q.ID, q.Infinitive, q.Confidence, q.Sentence)
	}
}

func init() {
	planCmd.Flags().StringP("user", "u", "local", "User the plan is for")
	planCmd.Flags().IntP("count", "n", 10, "Batch size")
	planCmd.Flags().StringSlice("kind", nil, "Bank kinds to mix (sentence, pronoun)")
	planCmd.Flags().StringSlice("mood", nil, "Restrict to these moods")
	planCmd.Flags().StringSlice("tense", nil, "Restrict to these tenses")
	planCmd.Flags().Bool("vos", false, "Allow vos drills")
	planCmd.Flags().Bool("vosotros", false, "Allow vosotros drills")
}

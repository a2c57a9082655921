package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/conjugo/internal/store"
	"github.com/spf13/cobra"
)

// verbImport is the on-disk shape of one dictionary entry.
type verbImport struct {
	Infinitive   string `json:"infinitive"`
	Meaning      string `json:"meaning"`
	Class        int    `json:"class"`
	Irregular    bool   `json:"irregular"`
	Reflexive    bool   `json:"reflexive"`
	Transitive   bool   `json:"transitive"`
	Gerund       string `json:"gerund"`
	Participle   string `json:"participle"`
	Conjugations []struct {
		Mood   string `json:"mood"`
		Tense  string `json:"tense"`
		Person string `json:"person"`
		Form   string `json:"form"`
	} `json:"conjugations"`
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Load verbs and conjugation tables into the dictionary",
	Long:  "Reads a JSON array of verbs with their conjugation tables. Re-importing a verb reuses it and replaces any conjugation cells it already has.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var verbs []verbImport
		if err := json.Unmarshal(data, &verbs); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.VerbRepo()
		cells := 0
		for _, v := range verbs {
			if v.Infinitive == "" {
				return fmt.Errorf("entry without infinitive in %s", args[0])
			}
			id, err := repo.Create(ctx, &store.Verb{
				Infinitive:       v.Infinitive,
				Meaning:          v.Meaning,
				ConjugationClass: v.Class,
				Irregular:        v.Irregular,
				Reflexive:        v.Reflexive,
				Transitive:       v.Transitive,
				Gerund:           v.Gerund,
				Participle:       v.Participle,
			})
			if err != nil {
				return fmt.Errorf("import %s: %w", v.Infinitive, err)
			}
			for _, c := range v.Conjugations {
				err := repo.AddConjugation(ctx, &store.Conjugation{
					VerbID: id,
					Mood:   c.Mood,
					Tense:  c.Tense,
					Person: c.Person,
					Form:   c.Form,
				})
				if err != nil {
					return fmt.Errorf("import %s %s/%s/%s: %w", v.Infinitive, c.Mood, c.Tense, c.Person, err)
				}
				cells++
			}
		}

		fmt.Printf("Imported %d verb(s), %d conjugation cell(s).\n", len(verbs), cells)
		return nil
	},
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/conjugo/internal/bank"
	"github.com/abhisek/conjugo/internal/store"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and maintain the question bank",
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-kind bank size and confidence",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.QuestionRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query bank stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("The bank is empty.")
			return nil
		}

		fmt.Printf("%-10s  %6s  %9s  %4s  %4s\n", "Kind", "Count", "Avg Conf", "Min", "Max")
		fmt.Println(strings.Repeat("─", 42))
		for _, s := range stats {
			fmt.Printf("%-10s  %6d  %9.1f  %4d  %4d\n",
				s.Kind, s.Count, s.AvgConfidence, s.MinConfidence, s.MaxConfidence)
		}
		return nil
	},
}

var bankPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete stale bank entries and their practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := bankService(st).Prune(cmd.Context())
		if err != nil {
			return fmt.Errorf("prune bank: %w", err)
		}
		fmt.Printf("Pruned %d question(s) older than %d days.\n", n, int(bank.PruneAge.Hours()/24))
		return nil
	},
}

var bankRateCmd = &cobra.Command{
	Use:   "rate <id> <-1|0|1>",
	Short: "Rate a question, nudging its confidence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rating %q", args[1])
		}
		userID, _ := cmd.Flags().GetString("user")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := bankService(st).Rate(cmd.Context(), userID, id, rating); err != nil {
			return fmt.Errorf("rate question: %w", err)
		}
		return nil
	},
}

var bankFavCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Mark or unmark a question as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}
		userID, _ := cmd.Flags().GetString("user")
		remove, _ := cmd.Flags().GetBool("remove")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := bankService(st).Favorite(cmd.Context(), userID, id, !remove); err != nil {
			return fmt.Errorf("update favorite: %w", err)
		}
		return nil
	},
}

var bankComplainCmd = &cobra.Command{
	Use:   "complain <id>",
	Short: "Flag a question as broken, lowering its confidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		bankService(st).Complain(cmd.Context(), id)
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func bankService(st *store.Store) *bank.Service {
	return bank.NewService(st.QuestionRepo(), st.StatRepo())
}

func init() {
	bankRateCmd.Flags().StringP("user", "u", "local", "User the rating belongs to")
	bankFavCmd.Flags().StringP("user", "u", "local", "User the favorite belongs to")
	bankFavCmd.Flags().Bool("remove", false, "Remove the favorite instead of setting it")

	bankCmd.AddCommand(bankStatsCmd)
	bankCmd.AddCommand(bankPruneCmd)
	bankCmd.AddCommand(bankRateCmd)
	bankCmd.AddCommand(bankFavCmd)
	bankCmd.AddCommand(bankComplainCmd)
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meurig/clic/internal/store"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage saved records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved records",
	Args:  cobra.NoArgs,
	RunE:  runRecordsList,
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsShow,
}

var recordsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsRm,
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsRmCmd)
}

func openStore() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return st, nil
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.List(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(saved)
		return nil
	}

	if len(saved) == 0 {
		fmt.Println("No saved records")
		return nil
	}

	fmt.Printf("Records (%d):\n\n", len(saved))
	fmt.Printf("  %-12s │ %-32s │ %-6s │ %s\n", "ID", "SERIES", "S/E", "RESOLVED")
	fmt.Println("───────────────┼──────────────────────────────────┼────────┼───────────")

	for _, s := range saved {
		series := s.Record.Series
		if len(series) > 32 {
			series = series[:29] + "..."
		}
		se := fmt.Sprintf("S%d", s.Record.SeasonNumber)
		if s.Record.EpisodeNumber != nil {
			se += fmt.Sprintf("E%d", *s.Record.EpisodeNumber)
		}
		fmt.Printf("  %-12s │ %-32s │ %-6s │ %s\n",
			s.Record.ID, series, se, s.ResolvedAt.Format("2006-01-02"))
	}
	return nil
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved record with id %s", args[0])
		}
		return err
	}

	if jsonOutput {
		printJSON(saved)
		return nil
	}

	printRecordHuman(saved.Record)
	fmt.Printf("\nSource:     %s\n", saved.SourceURL)
	fmt.Printf("Resolved:   %s\n", saved.ResolvedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runRecordsRm(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved record with id %s", args[0])
		}
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

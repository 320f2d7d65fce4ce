package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meurig/clic/pkg/welshdate"
)

var dateCmd = &cobra.Command{
	Use:   "date <welsh date>",
	Short: "Normalize a Welsh broadcast date",
	Long: `Parse a "day month year" date with a Welsh month name.

Examples:
  clic date "15 Ionawr 2021"
  clic date 29 Chwefror 2024`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDateCmd,
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func runDateCmd(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	t, err := welshdate.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", input, err)
	}

	if jsonOutput {
		printJSON(map[string]any{
			"input":     input,
			"iso":       t.Format(time.RFC3339),
			"date":      welshdate.Compact(t),
			"timestamp": t.Unix(),
		})
		return nil
	}

	fmt.Printf("ISO:        %s\n", t.Format(time.RFC3339))
	fmt.Printf("Compact:    %s\n", welshdate.Compact(t))
	fmt.Printf("Timestamp:  %d\n", t.Unix())
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathlab/internal/practice"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise kinds and their current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd, nil)
		if err != nil {
			return err
		}
		defer rt.Close()

		printKinds(cmd.OutOrStdout(), rt.cfg.Exercises)
		return nil
	},
}

func printKinds(w io.Writer, s practice.Settings) {
	fmt.Fprintf(w, "%-16s  %-16s  %-6s  %s\n", "Kind", "Name", "Review", "Settings")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	kinds := practice.Kinds()
	for _, k := range kinds {
		review := "no"
		if k.Review {
			review = "yes"
		}
		fmt.Fprintf(w, "%-16s  %-16s  %-6s  %s\n", k.Kind, k.Title, review, s.Describe(k.Kind))
	}

	fmt.Fprintf(w, "\n%d kinds\n", len(kinds))
}

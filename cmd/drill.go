package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/mathlab/internal/practice"
	"github.com/abhisek/mathlab/internal/screens/summary"
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice one exercise kind in the terminal without the full UI",
	Long: `Drill runs a single exercise session over plain stdin/stdout.
Use "mathlab list" to see the available kinds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")
		count, _ := cmd.Flags().GetInt("count")
		maxFlag, _ := cmd.Flags().GetInt("max")
		mode, _ := cmd.Flags().GetString("mode")

		kind, err := practice.ParseKind(kindFlag)
		if err != nil {
			return err
		}

		rt, err := loadRuntime(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer rt.Close()

		settings, err := rt.cfg.Exercises.With(kind, practice.Override{Count: count, Max: maxFlag, Mode: mode})
		if err != nil {
			return err
		}
		rt.cfg.Exercises = settings
		if err := rt.cfg.Validate(); err != nil {
			return err
		}

		ex, err := practice.New(kind, settings, rt.rng, rt.logger)
		if err != nil {
			return err
		}
		rt.logger.Info("drill started", "kind", kind, "settings", settings.Describe(kind))
		return runDrill(cmd.InOrStdin(), cmd.OutOrStdout(), ex)
	},
}

func init() {
	drillCmd.Flags().String("kind", "", "Exercise kind (see mathlab list)")
	drillCmd.Flags().Int("count", 0, "Number of exercises (throws for dice)")
	drillCmd.Flags().Int("max", 0, "Upper limit (dice per throw for dice, letters for word-lab)")
	drillCmd.Flags().String("mode", "", "Mode for arithmetic (add, sub, mix) or multiplication (mul, div, mix)")
	_ = drillCmd.MarkFlagRequired("kind")
}

// runDrill starts ex and feeds it one line of input per prompt until the
// session ends or input runs out.
func runDrill(in io.Reader, out io.Writer, ex practice.Exercise) error {
	scanner := bufio.NewScanner(in)
	ex.Start()

	lastStep, lastReview := 0, false
	for !ex.Done() {
		p, ok := ex.Prompt()
		if !ok {
			return practice.ErrNotActive
		}

		if p.Step != lastStep || p.Review != lastReview {
			label := "Question"
			if p.Review {
				label = "Review"
			}
			fmt.Fprintf(out, "\n── %s · %s %d/%d ──\n", p.Title, label, p.Step, p.Total)
			fmt.Fprintln(out, p.Text)
			fmt.Fprintf(out, "(%s)\n", p.Hint)
			lastStep, lastReview = p.Step, p.Review
		} else if p.Retry {
			fmt.Fprintln(out, p.Text)
		}

		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out, "\nStopped before the end.")
			return nil
		}

		fb, err := ex.Submit(scanner.Text())
		if errors.Is(err, practice.ErrInvalidInput) {
			fmt.Fprintf(out, "Hmm, I can't read that. %s\n", p.Hint)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, fb.Message)
	}

	printSummary(out, ex)
	return nil
}

func printSummary(out io.Writer, ex practice.Exercise) {
	sum := ex.Summary()
	fmt.Fprintf(out, "\n══ %s ══\n", sum.Title)
	fmt.Fprintln(out, summary.Headline(sum))
	fmt.Fprintf(out, "Correct first time: %d/%d (%.0f%%)\n", sum.Correct, sum.Total, sum.Accuracy*100)
	if sum.ReviewedPass {
		fmt.Fprintf(out, "Finished after %d passes, including a review of the missed ones.\n", sum.Attempts)
	}
	if len(sum.Mistakes) == 0 {
		return
	}
	fmt.Fprintln(out, "To practice again:")
	for _, m := range sum.Mistakes {
		prompt := strings.Join(strings.Fields(strings.ReplaceAll(m.Prompt, "\n", " / ")), " ")
		fmt.Fprintf(out, "  %s  you said %s, answer %s\n", prompt, m.Given, m.Expected)
	}
}

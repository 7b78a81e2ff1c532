package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/planner/formats"
)

func (cli *CLI) calcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <lecture-weight> <exercise-weight> <lecture-score> <exercise-score>",
		Short: "Compute a final grade from lecture and exercise parts",
		Long: `Computes a weighted final grade from two components and appends it to
the running calculation history. The weights must sum to exactly 100 and
every argument must be a number.

The final percentage maps to a grade point and description:
  >= 90  10  Excellent
  >= 80   9  Very Good
  >= 70   8  Good
  >= 60   7  Satisfactory
  >= 50   6  Sufficient
   < 50   5  Fail`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			result, err := app.Calc.Record(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			return cli.output(result, func() string {
				return fmt.Sprintf("Final grade: %.2f%% (%d, %s)\n",
					result.FinalPercent, result.Point, result.Label)
			})
		},
	}

	cmd.AddCommand(
		cli.calcListCommand(),
		cli.calcRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) calcListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded calculations and the average grade point",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			entries := app.Calc.Entries()
			avg, hasAvg := app.Calc.Average()
			return cli.output(entries, func() string {
				return formats.GradeHistory(entries, avg, hasAvg)
			})
		},
	}
}

func (cli *CLI) calcRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a recorded calculation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			app.Calc.Delete(args[0])
			fmt.Fprintf(cli.stdout, "Removed calculation %s\n", args[0])
			return nil
		},
	}
}

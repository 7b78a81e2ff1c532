package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/planner"
)

func (cli *CLI) gradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Track course grades through weighted components",
	}

	cmd.AddCommand(
		cli.gradesAddCommand(),
		cli.gradesListCommand(),
		cli.gradesComponentCommand(),
		cli.gradesRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) gradesAddCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a grade-tracked course",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			course, err := app.GradeCourses.Create(planner.GradeCourse{Name: name})
			if err != nil {
				return err
			}
			return cli.output(course, func() string {
				return fmt.Sprintf("Added course %s (%s)\n", course.Name, course.ID)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (cli *CLI) gradesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List grade-tracked courses with their current grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			courses := app.GradeCourses.List()
			return cli.output(courses, func() string {
				return formats.GradeReport(courses)
			})
		},
	}
}

func (cli *CLI) gradesComponentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Manage a course's graded components",
	}

	cmd.AddCommand(
		cli.gradesComponentAddCommand(),
		cli.gradesComponentRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) gradesComponentAddCommand() *cobra.Command {
	var (
		name   string
		weight string
		score  string
	)

	cmd := &cobra.Command{
		Use:   "add <course-id>",
		Short: "Add a graded component to a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			course, err := app.GradeCourses.AddComponent(args[0], planner.GradeComponent{
				Name:   name,
				Weight: weight,
				Score:  score,
			})
			if err != nil {
				return err
			}
			return cli.output(course, func() string {
				return fmt.Sprintf("Added %s to %s, current grade %.2f%%\n",
					name, course.Name, course.CurrentGrade())
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Component name, e.g. Midterm (required)")
	cmd.Flags().StringVar(&weight, "weight", "", "Component weight percentage (required)")
	cmd.Flags().StringVar(&score, "score", "", "Score achieved, empty counts as 0")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func (cli *CLI) gradesComponentRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <course-id> <component-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a graded component from a course",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			course, err := app.GradeCourses.RemoveComponent(args[0], args[1])
			if err != nil {
				return err
			}
			return cli.output(course, func() string {
				return fmt.Sprintf("Removed component, current grade %.2f%%\n", course.CurrentGrade())
			})
		},
	}
}

func (cli *CLI) gradesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a grade-tracked course",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.GradeCourses.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Removed course %s\n", args[0])
			return nil
		},
	}
}

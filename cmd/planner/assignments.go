package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/planner"
)

func (cli *CLI) assignmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "Manage assignments",
	}

	cmd.AddCommand(
		cli.assignmentsAddCommand(),
		cli.assignmentsListCommand(),
		cli.assignmentsDoneCommand(),
		cli.assignmentsEditCommand(),
		cli.assignmentsRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) assignmentsAddCommand() *cobra.Command {
	var (
		title       string
		course      string
		due         string
		description string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			dueAt, err := parseDateTime(due)
			if err != nil {
				return err
			}

			assignment, err := app.Assignments.Create(planner.Assignment{
				Title:       title,
				Course:      course,
				DueDate:     dueAt,
				Description: description,
				Priority:    planner.Priority(priority),
			})
			if err != nil {
				return err
			}

			return cli.output(assignment, func() string {
				return fmt.Sprintf("Added assignment %s (%s)\n", assignment.Title, assignment.ID)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Assignment title (required)")
	cmd.Flags().StringVar(&course, "course", "", "Course the assignment belongs to")
	cmd.Flags().StringVar(&due, "due", "", "Due date, \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().StringVar(&description, "description", "", "Free-form notes")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: Low|Medium|High (default Medium)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (cli *CLI) assignmentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			assignments := app.Assignments.List()
			return cli.output(assignments, func() string {
				return formats.AssignmentList(assignments)
			})
		},
	}
}

func (cli *CLI) assignmentsDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an assignment's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			assignment, err := planner.ToggleCompleted(app.Assignments, args[0])
			if err != nil {
				return err
			}

			return cli.output(assignment, func() string {
				state := "pending"
				if assignment.Completed {
					state = "completed"
				}
				return fmt.Sprintf("Marked %s as %s\n", assignment.Title, state)
			})
		},
	}
}

func (cli *CLI) assignmentsEditCommand() *cobra.Command {
	var (
		title       string
		course      string
		due         string
		description string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			assignment, err := app.Assignments.Get(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				assignment.Title = title
			}
			if cmd.Flags().Changed("course") {
				assignment.Course = course
			}
			if cmd.Flags().Changed("due") {
				if assignment.DueDate, err = parseDateTime(due); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("description") {
				assignment.Description = description
			}
			if cmd.Flags().Changed("priority") {
				assignment.Priority = planner.Priority(priority)
			}

			updated, err := app.Assignments.Update(assignment.ID, assignment)
			if err != nil {
				return err
			}
			return cli.output(updated, func() string {
				return fmt.Sprintf("Updated assignment %s\n", updated.Title)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Assignment title")
	cmd.Flags().StringVar(&course, "course", "", "Course the assignment belongs to")
	cmd.Flags().StringVar(&due, "due", "", "Due date, \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().StringVar(&description, "description", "", "Free-form notes")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: Low|Medium|High")

	return cmd
}

func (cli *CLI) assignmentsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an assignment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Assignments.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Removed assignment %s\n", args[0])
			return nil
		},
	}
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/planner"
)

const (
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

func parseClock(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t, nil
}

func parseDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD HH:MM: %w", s, err)
	}
	return t, nil
}

func (cli *CLI) coursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage the course schedule",
	}

	cmd.AddCommand(
		cli.coursesAddCommand(),
		cli.coursesListCommand(),
		cli.coursesEditCommand(),
		cli.coursesRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) coursesAddCommand() *cobra.Command {
	var (
		name     string
		day      string
		start    string
		end      string
		location string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course to the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			startAt, err := parseClock(start)
			if err != nil {
				return err
			}
			endAt, err := parseClock(end)
			if err != nil {
				return err
			}

			course, err := app.Courses.Create(planner.Course{
				Name:      name,
				Day:       planner.Day(day),
				StartTime: startAt,
				EndTime:   endAt,
				Location:  location,
			})
			if err != nil {
				return err
			}

			return cli.output(course, func() string {
				return fmt.Sprintf("Added course %s (%s)\n", course.Name, course.ID)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name (required)")
	cmd.Flags().StringVar(&day, "day", "", "Day of the week (default Monday)")
	cmd.Flags().StringVar(&start, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time, HH:MM")
	cmd.Flags().StringVar(&location, "location", "", "Room or building")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (cli *CLI) coursesListCommand() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the course schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			courses := app.Courses.List()
			if markdown {
				fmt.Fprint(cli.stdout, formats.MarkdownSchedule(courses))
				return nil
			}
			return cli.output(courses, func() string {
				return formats.CourseList(courses)
			})
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the schedule as a markdown table")
	return cmd
}

func (cli *CLI) coursesEditCommand() *cobra.Command {
	var (
		name     string
		day      string
		start    string
		end      string
		location string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			course, err := app.Courses.Get(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				course.Name = name
			}
			if cmd.Flags().Changed("day") {
				course.Day = planner.Day(day)
			}
			if cmd.Flags().Changed("start") {
				if course.StartTime, err = parseClock(start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if course.EndTime, err = parseClock(end); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("location") {
				course.Location = location
			}

			updated, err := app.Courses.Update(course.ID, course)
			if err != nil {
				return err
			}
			return cli.output(updated, func() string {
				return fmt.Sprintf("Updated course %s\n", updated.Name)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&day, "day", "", "Day of the week")
	cmd.Flags().StringVar(&start, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time, HH:MM")
	cmd.Flags().StringVar(&location, "location", "", "Room or building")

	return cmd
}

func (cli *CLI) coursesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a course",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Courses.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Removed course %s\n", args[0])
			return nil
		},
	}
}

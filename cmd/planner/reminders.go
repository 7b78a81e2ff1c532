package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/remind"
)

func (cli *CLI) remindersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage reminders and their notifications",
	}

	cmd.AddCommand(
		cli.remindersAddCommand(),
		cli.remindersListCommand(),
		cli.remindersEditCommand(),
		cli.remindersRemoveCommand(),
	)
	return cmd
}

func (cli *CLI) remindersAddCommand() *cobra.Command {
	var (
		title string
		body  string
		at    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			date, err := parseDateTime(at)
			if err != nil {
				return err
			}

			reminder, err := app.Reminders.Create(cmd.Context(), remind.Reminder{
				Title: title,
				Body:  body,
				Date:  date,
			})
			if err != nil {
				return err
			}

			return cli.output(reminder, func() string {
				if reminder.NotificationID != "" {
					return fmt.Sprintf("Added reminder %s, alert scheduled\n", reminder.Title)
				}
				return fmt.Sprintf("Added reminder %s\n", reminder.Title)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Reminder title (required)")
	cmd.Flags().StringVar(&body, "body", "", "Reminder body")
	cmd.Flags().StringVar(&at, "at", "", "When to alert, \"YYYY-MM-DD HH:MM\"")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (cli *CLI) remindersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			reminders := app.Reminders.List()
			return cli.output(reminders, func() string {
				return formats.ReminderList(reminders)
			})
		},
	}
}

func (cli *CLI) remindersEditCommand() *cobra.Command {
	var (
		title string
		body  string
		at    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a reminder and reschedule its alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			reminder, err := app.Reminders.Get(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				reminder.Title = title
			}
			if cmd.Flags().Changed("body") {
				reminder.Body = body
			}
			if cmd.Flags().Changed("at") {
				if reminder.Date, err = parseDateTime(at); err != nil {
					return err
				}
			}

			updated, err := app.Reminders.Update(cmd.Context(), reminder.ID, reminder)
			if err != nil {
				return err
			}
			return cli.output(updated, func() string {
				return fmt.Sprintf("Updated reminder %s\n", updated.Title)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Reminder title")
	cmd.Flags().StringVar(&body, "body", "", "Reminder body")
	cmd.Flags().StringVar(&at, "at", "", "When to alert, \"YYYY-MM-DD HH:MM\"")

	return cmd
}

func (cli *CLI) remindersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a reminder and cancel its pending alert",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Reminders.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Removed reminder %s\n", args[0])
			return nil
		},
	}
}

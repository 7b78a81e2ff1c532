package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (cli *CLI) registerCommand() *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the local account",
		Long: `Registers the planner's local account. The password is stored only as
a bcrypt hash; registering again replaces the previous account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Auth.Register(name, email, password); err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Registered %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (cli *CLI) loginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify the local account's credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ok, err := app.Auth.Verify(email, password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("invalid email or password")
			}

			account, _, err := app.Auth.Account()
			if err != nil {
				return err
			}
			fmt.Fprintf(cli.stdout, "Welcome back, %s\n", account.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

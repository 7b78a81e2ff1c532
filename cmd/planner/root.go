package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/notify"
	"github.com/arthur-debert/planner/planner"
	"github.com/arthur-debert/planner/storage"
)

// CLI wires cobra, viper and the planner app together.
type CLI struct {
	rootCmd   *cobra.Command
	viperInst *viper.Viper
	app       *planner.App
	stdout    io.Writer
}

// NewCLI creates the planner CLI.
func NewCLI() *CLI {
	cli := &CLI{
		viperInst: viper.New(),
		stdout:    os.Stdout,
	}

	cli.setupViperConfig()
	cli.createRootCommand()
	cli.addCommands()

	return cli
}

// setupViperConfig configures Viper with environment variables and config files
func (cli *CLI) setupViperConfig() {
	if configFile := os.Getenv("PLANNER_CONFIG"); configFile != "" {
		cli.viperInst.SetConfigFile(configFile)
	} else {
		cli.viperInst.SetConfigName("planner")
		cli.viperInst.SetConfigType("yaml")
		cli.viperInst.AddConfigPath(".")
		cli.viperInst.AddConfigPath("$HOME/.planner")
	}

	cli.viperInst.AutomaticEnv()
	cli.viperInst.SetEnvPrefix("PLANNER")
	cli.viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Read config file if it exists (ignore errors)
	_ = cli.viperInst.ReadInConfig()
}

func (cli *CLI) createRootCommand() {
	cli.rootCmd = &cobra.Command{
		Use:   "planner",
		Short: "Planner - local student academic planner",
		Long: `Planner keeps your course schedule, assignments, grades and reminders
in local storage. Nothing leaves your machine.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (PLANNER_*)
3. Configuration file (PLANNER_CONFIG, ./planner.yaml, ~/.planner/planner.yaml)

Examples:
  planner courses add --name "Algorithms" --day Monday --start 09:00 --end 10:30
  planner assignments add --title "Essay draft" --due "2026-09-15 18:00"
  planner calc 60 40 90 85
  planner reminders add --title "Lab report" --at "2026-09-10 08:00"`,
		SilenceUsage: true,
	}

	pf := cli.rootCmd.PersistentFlags()
	pf.String("data-dir", "", "Directory holding planner data (default: XDG data dir)")
	pf.StringP("format", "f", "text", "Output format: text|json|yaml")
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.BoolP("verbose", "v", false, "Also log to stderr")

	_ = cli.viperInst.BindPFlag("data-dir", pf.Lookup("data-dir"))
	_ = cli.viperInst.BindPFlag("format", pf.Lookup("format"))
	_ = cli.viperInst.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = cli.viperInst.BindPFlag("verbose", pf.Lookup("verbose"))

	cli.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initLogging(cli.viperInst.GetString("log-level"), cli.viperInst.GetBool("verbose"))
	}
}

func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.coursesCommand(),
		cli.assignmentsCommand(),
		cli.gradesCommand(),
		cli.calcCommand(),
		cli.remindersCommand(),
		cli.registerCommand(),
		cli.loginCommand(),
	)
}

// Execute runs the CLI.
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// dataDir resolves the storage directory: flag/env/config first, then the
// XDG data dir.
func (cli *CLI) dataDir() string {
	if dir := cli.viperInst.GetString("data-dir"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "planner")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "planner")
	}
	return filepath.Join(home, ".local", "share", "planner")
}

// openApp assembles the planner over file storage and a console notifier.
// Callers must Close the returned app.
func (cli *CLI) openApp(ctx context.Context) (*planner.App, error) {
	if cli.app != nil {
		return cli.app, nil
	}

	kv, err := storage.NewFile(cli.dataDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	app, err := planner.Open(ctx, kv, notify.NewConsole(logger()), planner.WithLogger(logger()))
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	cli.app = app
	return app, nil
}

// output renders v in the selected format; text rendering is supplied by
// the caller since it is shape-specific.
func (cli *CLI) output(v interface{}, text func() string) error {
	name := cli.viperInst.GetString("format")
	if name == "" || name == "text" {
		fmt.Fprint(cli.stdout, text())
		return nil
	}

	format, err := formats.Get(name)
	if err != nil {
		return err
	}
	out, err := format.Render(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.stdout, strings.TrimRight(out, "\n"))
	return nil
}

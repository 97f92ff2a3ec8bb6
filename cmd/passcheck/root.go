package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passcheck/internal/checker"
	"passcheck/internal/config"
	pcerrors "passcheck/internal/errors"
	"passcheck/internal/feedback"
	"passcheck/internal/logging"
	"passcheck/internal/sessionlog"
	"passcheck/internal/strength"
	"passcheck/internal/terminal"
)

// Color definitions shared by the command surface.
var (
	yellow = color.New(color.FgYellow).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// isTTY checks if the current environment has a TTY available
func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type cliOptions struct {
	configFile string
	logFile    string
	noColor    bool
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "passcheck",
		Short: "Interactive password strength checker",
		Long: `passcheck scores a password against five composition rules
(length, uppercase, lowercase, digit, special character), reports
colored feedback, and appends an attempt history to a local log file.
Passwords are read without echo and are never written anywhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive by contract; without a terminal there is
			// nothing to prompt, so fall back to help.
			if !isTTY() {
				return cmd.Help()
			}
			return runInteractive(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ~/.passcheck/passcheck.yaml)")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "session log file (overrides config)")
	root.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&opts.debug, "debug", false, "write diagnostic output to the debug log")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newConfigCommand(opts))

	return root
}

func loadConfig(opts *cliOptions) (config.Config, error) {
	var loadOpts []config.Option
	if opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// runInteractive drives the outer session loop: run one full check,
// then offer to start another with a fresh attempt counter.
func runInteractive(opts *cliOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// fatih/color already folds in NO_COLOR and non-TTY detection.
	colorEnabled := !cfg.NoColor && !color.NoColor

	diag := logging.Nop()
	if cfg.Debug {
		fileLogger, logErr := logging.NewFileLogger(cfg.DebugLogFile)
		if logErr != nil {
			fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("(debug log unavailable: %v)", logErr)))
		} else {
			defer func() { _ = fileLogger.Close() }()
			diag = fileLogger
		}
	}

	sessionLog, err := sessionlog.New(cfg.LogFile)
	if err != nil {
		return err
	}

	evaluator := strength.NewEvaluator(strength.StandardRules(cfg.MinLength, cfg.SpecialChars)...)
	console := terminal.New(os.Stdin, os.Stdout, colorEnabled, cfg.Spinner)
	renderer := feedback.NewRenderer(os.Stdout, colorEnabled)

	renderer.RenderBanner(appVersion())

	for {
		session := checker.New(console, renderer, evaluator, sessionLog, diag)
		if _, err := session.Run(); err != nil {
			if pcerrors.IsInput(err) {
				// The input stream is gone; the session already said
				// goodbye. A user-driven stop is not a failure.
				return nil
			}
			return err
		}

		again, err := console.Confirm("Nice job! Would you like to check another password?")
		if err != nil || !again {
			renderer.RenderGoodbye()
			return nil
		}
		fmt.Println()
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/up-web-vue/create-up-web-vue/pkg/config"
	"github.com/up-web-vue/create-up-web-vue/pkg/console"
	"github.com/up-web-vue/create-up-web-vue/pkg/logger"
	"github.com/up-web-vue/create-up-web-vue/pkg/parser"
	"github.com/up-web-vue/create-up-web-vue/pkg/wizard"
)

var createLog = logger.New("cli:create_command")

var (
	// ErrCancelled is returned when the user declines to overwrite or aborts the prompts.
	ErrCancelled = errors.New("operation cancelled")
	// ErrUnexpected wraps every other failure of the create command.
	ErrUnexpected = errors.New("unexpected error")
)

// CreateConfig contains configuration for the create command.
// Zero-valued fields fall back to the interactive terminal defaults.
type CreateConfig struct {
	Options    *parser.Options
	Stderr     io.Writer
	Prompter   wizard.Prompter
	Scaffolder Scaffolder
	LoadConfig func() (config.Config, error)
	// RichColor selects the bold green banner; nil detects it from the terminal.
	RichColor *bool
}

func (c CreateConfig) withDefaults() CreateConfig {
	if c.Options == nil {
		c.Options = parser.Parse(nil, parser.DefaultConfig())
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Prompter == nil {
		c.Prompter = consolePrompter{}
	}
	if c.Scaffolder == nil {
		c.Scaffolder = reportScaffolder{out: c.Stderr}
	}
	if c.LoadConfig == nil {
		c.LoadConfig = config.Load
	}
	if c.RichColor == nil {
		rich := console.SupportsRichColor()
		c.RichColor = &rich
	}
	return c
}

// NewRootCommand creates the create-up-web-vue command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(CreateConfig{})
}

func newRootCommand(base CreateConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-up-web-vue [project-name] [flags]",
		Short: "Scaffold a new up-web-vue project",
		Long: `Scaffold a new up-web-vue project.

Asks for the project name unless it is given as the first argument, then asks
whether existing files in the target directory may be removed unless --force
is set. Declining the overwrite or pressing Ctrl+C cancels with exit status 1.

Flags:
  --force                      Overwrite the target directory without asking
  --typescript, --ts, --TS     Use TypeScript
  --with-tests, --tests        Add unit testing
  --router, --vue-router       Add Vue Router
  --verbose                    Print the parsed arguments
  --version                    Print the version
  -h, --help                   Show this help

Any other --flag is accepted as a boolean and passed on to the template step.
Write --name=false or --no-name to turn a flag off.

Examples:
  create-up-web-vue                     # Ask for everything
  create-up-web-vue my-app --ts         # Create my-app with TypeScript
  create-up-web-vue . --force           # Scaffold into the current directory`,
		// Flags are parsed by pkg/parser so unknown flags and aliases are accepted.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := parser.Parse(args, parser.DefaultConfig())

			if opts.Bool("help") || opts.Bool("h") {
				return cmd.Help()
			}
			if opts.Bool("version") {
				fmt.Fprintf(cmd.OutOrStdout(), "create-up-web-vue version %s\n", GetVersion())
				return nil
			}

			cfg := base
			cfg.Options = opts
			if cfg.Stderr == nil {
				cfg.Stderr = cmd.ErrOrStderr()
			}
			return RunCreate(cmd.Context(), cfg)
		},
	}
	return cmd
}

// RunCreate runs the create flow and is the single error boundary of the command:
// every failure is reported on stderr before it is returned.
func RunCreate(ctx context.Context, cfg CreateConfig) error {
	cfg = cfg.withDefaults()

	fmt.Fprint(cfg.Stderr, console.FormatBanner(*cfg.RichColor))
	if cwd, err := os.Getwd(); err == nil {
		fmt.Fprintln(cfg.Stderr, console.FormatInfoMessage("current file path: "+cwd))
	}

	err := runCreate(ctx, cfg)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCancelled):
		return err
	default:
		createLog.Printf("Create failed: %v", err)
		fmt.Fprintln(cfg.Stderr, console.FormatErrorMessage(err.Error()))
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
}

func runCreate(ctx context.Context, cfg CreateConfig) error {
	opts := cfg.Options
	createLog.Printf("Running create: %s", opts)

	userConfig, err := cfg.LoadConfig()
	if err != nil {
		return err
	}
	if userConfig.Accessible {
		console.SetAccessibleMode(true)
	}

	if opts.Bool("verbose") {
		fmt.Fprintln(cfg.Stderr, console.FormatVerboseMessage(fmt.Sprintf("argv: %s", opts)))
		fmt.Fprintln(cfg.Stderr, console.FormatVerboseMessage(fmt.Sprintf("forceOverwrite: %t", opts.Force())))
		if userConfig.Path != "" {
			fmt.Fprintln(cfg.Stderr, console.FormatVerboseMessage("config: "+userConfig.Path))
		}
	}

	state := wizard.NewState(opts.ProjectArg(), opts.Force(), userConfig.DefaultProjectName, opts.Flags)
	outcome, err := wizard.NewSequencer(cfg.Prompter).Run(ctx, state)
	if err != nil {
		return err
	}

	if outcome.Status == wizard.Cancelled {
		createLog.Printf("Create cancelled: %s", outcome.Reason)
		marker := "✖"
		if outcome.Reason == wizard.ReasonDeclined {
			marker = "❌"
		}
		fmt.Fprintln(cfg.Stderr, console.FormatCancelMessage(marker))
		return fmt.Errorf("%w: %s", ErrCancelled, outcome.Reason)
	}

	if err := cfg.Scaffolder.Scaffold(ctx, outcome.Decision); err != nil {
		return fmt.Errorf("failed to scaffold %s: %w", outcome.Decision.ProjectName, err)
	}
	return nil
}

// ExitCode maps the error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

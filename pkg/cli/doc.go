// Package cli provides the command-line interface of create-up-web-vue.
//
// The root command hands the raw arguments to pkg/parser, runs the question
// sequence from pkg/wizard through huh prompts, and passes the resulting
// decision to a Scaffolder.
//
// # Basic Usage
//
//	err := cli.RunCreate(ctx, cli.CreateConfig{
//		Options: parser.Parse([]string{"my-app", "--ts"}, parser.DefaultConfig()),
//	})
//
// # Error Handling
//
// RunCreate is the only error boundary. It prints a notice on stderr and returns:
//   - ErrCancelled when the user declines to overwrite or aborts the prompts
//   - an error wrapping ErrUnexpected for everything else
//
// Both map to exit status 1 through ExitCode.
//
// # Output Formatting
//
// All user-facing output uses pkg/console and goes to stderr. Debug logging
// is available through pkg/logger with DEBUG=cli:*.
package cli

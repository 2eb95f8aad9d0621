// Package cli implements the chirp command-line driver.
//
// The CLI is thin serialization glue: it parses arguments into
// payloads, injects the caller identity, and renders results. Every
// rule lives in the services; nothing here is authoritative.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Config   string
	DSN      string
	Identity string
	Format   string // "text" | "json"
	Verbose  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the chirp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "chirp",
		Short:         "chirp is a persistent social-post ledger",
		Long:          "A durable ledger of short posts with claimed usernames,\nper-post authorship checks and optional profiles.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default: per-user config dir)")
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", `PostgreSQL DSN, or "memory" for a non-persistent backend`)
	cmd.PersistentFlags().StringVar(&opts.Identity, "identity", "", "caller identity token (default: from config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewClaimCommand(opts))
	cmd.AddCommand(NewTweetCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))

	return cmd
}

// Execute runs the CLI with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClaimCommand creates the claim command.
func NewClaimCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "claim <username>",
		Short: "Claim a unique username for this identity",
		Long:  "Claims a username for the caller identity. Usernames are\nglobally unique and permanent; an identity can claim at most one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.registry.Claim(cmd.Context(), a.caller, args[0]); err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, fmt.Sprintf("claimed username %q", args[0]))
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okorolenko/chirp/internal/model"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and update user profiles",
	}
	cmd.AddCommand(newProfileSetCommand(opts))
	cmd.AddCommand(newProfileGetCommand(opts))
	return cmd
}

func newProfileSetCommand(opts *RootOptions) *cobra.Command {
	var (
		password string
		picture  string
		bio      string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace your profile",
		Long:  "Replaces the whole profile record. Unset flags clear their\nfields; the username always stays the registered one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			err = a.profiles.Update(cmd.Context(), a.caller, model.Profile{
				Password:          password,
				ProfilePictureURL: picture,
				Bio:               bio,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, "profile updated")
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "profile password")
	cmd.Flags().StringVar(&picture, "picture", "", "profile picture URL")
	cmd.Flags().StringVar(&bio, "bio", "", "profile bio")
	return cmd
}

func newProfileGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show the profile behind a username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			profile, ok, err := a.profiles.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return render(cmd.OutOrStdout(), opts.Format, fmt.Sprintf("no profile for %q", args[0]))
			}
			return render(cmd.OutOrStdout(), opts.Format, profile)
		},
	}
}

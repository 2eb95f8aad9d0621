package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewTweetCommand creates the tweet command group.
func NewTweetCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tweet",
		Short: "Create, read, edit and delete tweets",
	}
	cmd.AddCommand(newTweetCreateCommand(opts))
	cmd.AddCommand(newTweetGetCommand(opts))
	cmd.AddCommand(newTweetUpdateCommand(opts))
	cmd.AddCommand(newTweetDeleteCommand(opts))
	cmd.AddCommand(newTweetCommentCommand(opts))
	cmd.AddCommand(newTweetListCommand(opts))
	return cmd
}

func newTweetCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <content>",
		Short: "Post a new tweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.tweets.Create(cmd.Context(), a.caller, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweet)
		},
	}
}

func newTweetGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a tweet by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTweetID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.tweets.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweet)
		},
	}
}

func newTweetUpdateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <content>",
		Short: "Replace the content of your tweet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTweetID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.tweets.Update(cmd.Context(), a.caller, id, args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweet)
		},
	}
}

func newTweetDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete your tweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTweetID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.tweets.Delete(cmd.Context(), a.caller, id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweet)
		},
	}
}

func newTweetCommentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <content>",
		Short: "Comment on any tweet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTweetID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.tweets.Comment(cmd.Context(), a.caller, id, args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweet)
		},
	}
}

func newTweetListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tweets in ID order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			tweets, err := a.tweets.List(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, tweets)
		},
	}
}

func parseTweetID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tweet id %q", s)
	}
	return id, nil
}

// Package cli holds the atctl admin commands. They run the same use cases as
// the HTTP API, directly against the configured store.
package cli

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/spf13/cobra"
)

// Opener returns the store to run against and a func that releases it.
type Opener func() (*repository.Repository, func(), error)

func NewRootCommand(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "atctl",
		Short:        "Administer the at-api store",
		Long:         `atctl manages users, posts and tags without going through the HTTP API.`,
		SilenceUsage: true,
	}

	root.AddCommand(newUsersCommand(open))
	root.AddCommand(newPostsCommand(open))
	root.AddCommand(newTagsCommand(open))

	return root
}

// withRepository opens the store for the duration of fn.
func withRepository(cmd *cobra.Command, open Opener, fn func(ctx context.Context, repo *repository.Repository) error) error {
	repo, closeFn, err := open()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, repo)
}

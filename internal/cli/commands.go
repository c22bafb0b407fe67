package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/AkifumiSato/at-api/internal/service"
	"github.com/spf13/cobra"
)

func newUsersCommand(open Opener) *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	users.AddCommand(&cobra.Command{
		Use:   "add <uid>",
		Short: "Register a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo *repository.Repository) error {
				user, err := service.AddUser(ctx, repo.User, service.AddUserInput{UID: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added user %q (id %d)\n", user.UID, user.ID)
				return nil
			})
		},
	})

	users.AddCommand(&cobra.Command{
		Use:   "check <uid>",
		Short: "Show whether a user exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo *repository.Repository) error {
				user, err := service.CheckUser(ctx, repo.User, args[0])
				if err != nil {
					return err
				}
				if user == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No user %q\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %q has id %d\n", user.UID, user.ID)
				return nil
			})
		},
	})

	users.AddCommand(&cobra.Command{
		Use:   "delete <uid>",
		Short: "Delete a user and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo *repository.Repository) error {
				if err := service.DeleteUser(ctx, repo.User, service.DeleteUserInput{UID: args[0]}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %q\n", args[0])
				return nil
			})
		},
	})

	return users
}

func newPostsCommand(open Opener) *cobra.Command {
	posts := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}

	posts.AddCommand(&cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withRepository(cmd, open, func(ctx context.Context, repo *repository.Repository) error {
				post, err := service.PublishPost(ctx, repo.Post, service.PublishPostInput{ID: id})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published post %d at %s\n", post.ID, post.PublishedAt.Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	})

	return posts
}

func newTagsCommand(open Opener) *cobra.Command {
	tags := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
	}

	tags.AddCommand(&cobra.Command{
		Use:   "register <post-id> <tag-id>",
		Short: "Link a tag to a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			tagID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return withRepository(cmd, open, func(ctx context.Context, repo *repository.Repository) error {
				in := service.RegisterTagInput{PostID: postID, TagID: tagID}
				if err := service.RegisterTagToPost(ctx, repo.PostTag, in); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered tag %d to post %d\n", tagID, postID)
				return nil
			})
		},
	})

	return tags
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

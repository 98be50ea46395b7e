package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/iconfinder/internal/app"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

func newIconsetCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "iconset [iconset_id]",
		Short: "Show iconset details",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetIconsetDetails(ctx, args[0])
			}
		}),
	}
}

func newIconsetsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetListParams
	cmd := &cobra.Command{
		Use:   "iconsets",
		Short: "List public iconsets, newest first",
		Args:  cobra.NoArgs,
		RunE: r.runDoc(func(*cobra.Command, []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetPublicIconsets(ctx, p)
			}
		}),
	}
	bindIconsetListFlags(cmd, &p)
	return cmd
}

func newCategoryIconsetsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetListParams
	cmd := &cobra.Command{
		Use:   "category-iconsets [category_identifier]",
		Short: "List the public iconsets of a category",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetCategoryIconsets(ctx, args[0], p)
			}
		}),
	}
	bindIconsetListFlags(cmd, &p)
	return cmd
}

func newUserIconsetsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetListParams
	cmd := &cobra.Command{
		Use:   "user-iconsets [user_id]",
		Short: "List the public iconsets owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetUserIconsets(ctx, args[0], p)
			}
		}),
	}
	bindIconsetListFlags(cmd, &p)
	return cmd
}

func newAuthorIconsetsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetListParams
	cmd := &cobra.Command{
		Use:   "author-iconsets [author_id]",
		Short: "List the public iconsets published by an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("author", args[0])
			if err != nil {
				return err
			}
			return r.run(cmd, args, func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetAuthorIconsets(ctx, id, p)
			})
		},
	}
	bindIconsetListFlags(cmd, &p)
	return cmd
}

func newStyleIconsetsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetListParams
	cmd := &cobra.Command{
		Use:   "style-iconsets [style_identifier]",
		Short: "List the public iconsets of a style",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetStyleIconsets(ctx, args[0], p)
			}
		}),
	}
	bindIconsetListFlags(cmd, &p)
	return cmd
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/iconfinder/internal/app"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

func newAuthorCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "author [author_id]",
		Short: "Show author details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("author", args[0])
			if err != nil {
				return err
			}
			return r.run(cmd, args, func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetAuthorDetails(ctx, id)
			})
		},
	}
}

func newUserCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "user [user_id]",
		Short: "Show user details",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetUserDetails(ctx, args[0])
			}
		}),
	}
}

func newCategoriesCmd(r *runner) *cobra.Command {
	var p iconfinder.ListParams
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: r.runDoc(func(*cobra.Command, []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetAllCategories(ctx, p)
			}
		}),
	}
	bindListFlags(cmd, &p, "categories")
	return cmd
}

func newCategoryCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "category [category_identifier]",
		Short: "Show category details",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetCategoryDetails(ctx, args[0])
			}
		}),
	}
}

func newStylesCmd(r *runner) *cobra.Command {
	var p iconfinder.ListParams
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List styles",
		Args:  cobra.NoArgs,
		RunE: r.runDoc(func(*cobra.Command, []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetAllStyles(ctx, p)
			}
		}),
	}
	bindListFlags(cmd, &p, "styles")
	return cmd
}

func newStyleCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "style [style_identifier]",
		Short: "Show style details",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetStyleDetails(ctx, args[0])
			}
		}),
	}
}

func newLicenseCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "license [license_id]",
		Short: "Show license details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("license", args[0])
			if err != nil {
				return err
			}
			return r.run(cmd, args, func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetLicenseDetails(ctx, id)
			})
		},
	}
}

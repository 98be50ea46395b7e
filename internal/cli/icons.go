package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/iconfinder/internal/app"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

func newSearchCmd(r *runner) *cobra.Command {
	var p iconfinder.SearchParams
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search icons",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.SearchIcons(ctx, args[0], p)
			}
		}),
	}
	cmd.Flags().IntVar(&p.Count, "count", 1, "number of icons to return (0 means the default of 1)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "result offset")
	bindFilterFlags(cmd, &p.Premium, &p.Vector, &p.License)
	cmd.Flags().StringVar(&p.Category, "category", "", "category identifier")
	cmd.Flags().StringVar(&p.Style, "style", "", "style identifier")
	cmd.Flags().BoolVar(&p.IsExplicit, "explicit", false, "return only explicit content")
	return cmd
}

func newIconCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "icon [icon_id]",
		Short: "Show icon details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("icon", args[0])
			if err != nil {
				return err
			}
			return r.run(cmd, args, func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetIconDetails(ctx, id)
			})
		},
	}
}

func newIconsetIconsCmd(r *runner) *cobra.Command {
	var p iconfinder.IconsetIconsParams
	cmd := &cobra.Command{
		Use:   "iconset-icons [iconset_id]",
		Short: "List the icons of an iconset",
		Args:  cobra.ExactArgs(1),
		RunE: r.runDoc(func(_ *cobra.Command, args []string) app.Call {
			return func(ctx context.Context, c *iconfinder.Client) (iconfinder.Document, error) {
				return c.GetIconsetIcons(ctx, args[0], p)
			}
		}),
	}
	cmd.Flags().IntVar(&p.Count, "count", 10, "number of icons to return (0 means the default of 10)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&p.Query, "query", "", "search within the iconset")
	cmd.Flags().StringVar(&p.Vector, "vector", "", "vector filter: all, 0 or 1")
	return cmd
}

func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: must be an integer", kind, raw)
	}
	return id, nil
}

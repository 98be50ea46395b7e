package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Adda-Baaj/iconfinder/internal/app"
	"github.com/Adda-Baaj/iconfinder/pkg/iconfinder"
)

// AppFactory builds the runtime a command needs. It is called once per
// command invocation, after flags are parsed.
type AppFactory func() (*app.App, error)

type globalFlags struct {
	output string
	record bool
}

// NewRootCmd builds the iconfinder command tree.
func NewRootCmd(newApp AppFactory) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "iconfinder",
		Short:         "Query the Iconfinder v4 API",
		Long:          `Query the Iconfinder v4 API and print the JSON documents it returns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(flags.output)
		},
	}

	root.PersistentFlags().StringVarP(&flags.output, "output", "o", outputJSON, "output format: json or yaml")
	root.PersistentFlags().BoolVar(&flags.record, "record", false, "write fetched documents to the local journal")

	r := &runner{newApp: newApp, flags: flags}
	root.AddCommand(
		newSearchCmd(r),
		newIconCmd(r),
		newIconsetIconsCmd(r),
		newIconsetCmd(r),
		newIconsetsCmd(r),
		newCategoryIconsetsCmd(r),
		newUserIconsetsCmd(r),
		newAuthorIconsetsCmd(r),
		newStyleIconsetsCmd(r),
		newAuthorCmd(r),
		newUserCmd(r),
		newCategoriesCmd(r),
		newCategoryCmd(r),
		newStylesCmd(r),
		newStyleCmd(r),
		newLicenseCmd(r),
		newJournalCmd(r),
	)
	return root
}

// runner executes a client call for a command and prints the result.
type runner struct {
	newApp AppFactory
	flags  *globalFlags
}

func (r *runner) run(cmd *cobra.Command, args []string, call app.Call) error {
	a, err := r.newApp()
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	doc, err := a.Fetch(cmd.Context(), journalKey(cmd, args), r.flags.record, call)
	if err != nil {
		return err
	}
	return writeDocument(cmd.OutOrStdout(), r.flags.output, doc)
}

// journalKey identifies a request by command, arguments and the flags the
// user set, e.g. "categories:?after=40&count=5". Output flags are excluded.
func journalKey(cmd *cobra.Command, args []string) string {
	key := cmd.Name() + ":" + strings.Join(args, ",")

	var set []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "output", "record", "help":
			return
		}
		set = append(set, f.Name+"="+f.Value.String())
	})
	if len(set) == 0 {
		return key
	}
	sort.Strings(set)
	return key + "?" + strings.Join(set, "&")
}

// runDoc adapts a plain client call into a RunE.
func (r *runner) runDoc(call func(cmd *cobra.Command, args []string) app.Call) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return r.run(cmd, args, call(cmd, args))
	}
}

func bindIconsetListFlags(cmd *cobra.Command, p *iconfinder.IconsetListParams) {
	cmd.Flags().IntVar(&p.Count, "count", 10, "number of iconsets to return (0 means the default of 10)")
	cmd.Flags().IntVar(&p.After, "after", 0, "id of the last iconset already received")
	bindFilterFlags(cmd, &p.Premium, &p.Vector, &p.License)
}

func bindListFlags(cmd *cobra.Command, p *iconfinder.ListParams, noun string) {
	cmd.Flags().IntVar(&p.Count, "count", 10, "number of "+noun+" to return (0 means the default of 10)")
	cmd.Flags().IntVar(&p.After, "after", 0, "id of the last entry already received")
}

func bindFilterFlags(cmd *cobra.Command, premium, vector, license *string) {
	cmd.Flags().StringVar(premium, "premium", "", "premium filter: all, 0 or 1")
	cmd.Flags().StringVar(vector, "vector", "", "vector filter: all, 0 or 1")
	cmd.Flags().StringVar(license, "license", "", "license filter: none, commercial or commercial-nonattribution")
}

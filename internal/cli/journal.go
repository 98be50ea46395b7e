package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJournalCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect documents recorded with --record",
	}
	cmd.AddCommand(newJournalListCmd(r), newJournalShowCmd(r))
	return cmd
}

func newJournalListCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded document keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.newApp()
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			defer a.Close()

			j, err := a.Journal()
			if err != nil {
				return err
			}
			keys, err := j.Keys()
			if err != nil {
				return fmt.Errorf("list journal: %w", err)
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newJournalShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show [key]",
		Short: "Print a recorded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.newApp()
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			defer a.Close()

			j, err := a.Journal()
			if err != nil {
				return err
			}
			body, ok, err := j.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}
			if !ok {
				return fmt.Errorf("no journal entry for %q", args[0])
			}
			return writeRaw(cmd.OutOrStdout(), r.flags.output, body)
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			note, ok := st.Get(args[0])
			if !ok {
				return fmt.Errorf("note %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.EditorText(note.ID))
			return nil
		},
	}
}

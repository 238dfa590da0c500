package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()
			for _, n := range st.Notes() {
				pin := " "
				if n.Pinned {
					pin = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n", pin, n.ID, n.Title)
			}
			return nil
		},
	}
}

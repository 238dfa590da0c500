package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new [text...]",
		Short: "Create a note, optionally with initial content",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			note := st.Create(cmd.Context())
			if text := strings.Join(args, " "); text != "" {
				// Literal "\n" sequences let a shell user write multi-line notes.
				st.UpdateContent(cmd.Context(), note.ID, strings.ReplaceAll(text, `\n`, "\n"))
			}
			if err := st.LastWarning(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}
}

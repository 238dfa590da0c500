package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTasksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List every checkbox line across all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()
			for _, t := range st.Tasks() {
				box := "[ ]"
				if t.Completed {
					box = "[x]"
				}
				note, _ := st.Get(t.NoteID)
				fmt.Fprintf(out, "%d %s %s (%s:%d)\n", t.ID, box, t.Text, note.Title, t.LineIndex+1)
			}
			return nil
		},
	}
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Check or uncheck a task by its id from `noted tasks`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("task id must be a number: %w", err)
			}
			st, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			task, ok := st.ToggleTask(cmd.Context(), id)
			if !ok {
				return fmt.Errorf("no task with id %d", id)
			}
			if err := st.LastWarning(); err != nil {
				return err
			}
			state := "open"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", state, task.Text)
			return nil
		},
	}
}

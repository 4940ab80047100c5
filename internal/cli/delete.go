package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a diary entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.diary.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("No entry with id %s.\n", args[0])
				return nil
			}
			fmt.Printf("Deleted entry %s.\n", args[0])
			return nil
		},
	}
}

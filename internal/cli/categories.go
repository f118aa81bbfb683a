package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List and edit recipe categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := rt.svc.Categories.List(cmd.Context())
			if err != nil {
				return err
			}
			return printCategories(cmd.OutOrStdout(), cats)
		},
	}

	var description string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.svc.Categories.Create(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %s\n", c.ID)
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "Category description")

	var editDescription string
	edit := &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.svc.Categories.Update(cmd.Context(), args[0], args[1], editDescription)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated category %s\n", c.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&editDescription, "description", "", "Category description")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category; its recipes are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.svc.Categories.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted category %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, edit, rm)
	return cmd
}

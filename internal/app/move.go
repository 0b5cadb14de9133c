package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/catalog"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <category>",
		Short: "Move a book to another shelf",
		Long: `Move a library book to To Read, Reading or Completed.

Examples:
  readshelf move zyTCAlFPjgYC reading
  readshelf move zyTCAlFPjgYC done`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return completeCategories(cmd, args, toComplete)
			}
			return completeLibraryIDs(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			target, err := catalog.ParseCategory(args[1])
			if err != nil {
				return err
			}
			b, found := ctrl.Book(id)
			if !found {
				return fmt.Errorf("book %q not in library", id)
			}
			if b.Category == target {
				ok("%q is already on %s", b.Title, target.Label())
				return nil
			}
			if _, err := ctrl.Move(id, target); err != nil {
				return err
			}
			ok("Moved %q: %s → %s", b.Title, b.Category.Label(), target.Label())
			return nil
		},
	}
}

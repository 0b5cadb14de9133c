package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/library"
)

func newSaveCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "save <volume-id>...",
		Short: "Save books to your library by Google Books volume ID",
		Long: `Fetch each volume from Google Books and add it to the library.
New books land on the To Read shelf unless --category says otherwise.

Examples:
  readshelf save zyTCAlFPjgYC
  readshelf save B1hSG45JCX4C --category reading`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := catalog.ToRead
			if category != "" {
				var err error
				if target, err = catalog.ParseCategory(category); err != nil {
					return err
				}
			}

			var failed int
			for _, id := range args {
				v, err := client.Volume(cmd.Context(), id)
				if err != nil {
					warn("%v", err)
					failed++
					continue
				}
				if err := ctrl.Save(*v); err != nil {
					if errors.Is(err, library.ErrAlreadySaved) {
						warn("%q is already in your library", v.Title())
						continue
					}
					return err
				}
				if target != catalog.ToRead {
					if _, err := ctrl.Move(v.ID, target); err != nil {
						return err
					}
				}
				ok("Saved %q to %s", v.Title(), target.Label())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d books could not be saved", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Shelf for the new books: to-read, reading, completed")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}

func completeCategories(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"to-read", "reading", "completed"}, cobra.ShellCompDirectiveNoFileComp
}

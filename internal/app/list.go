package app

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/library"
)

func newListCmd() *cobra.Command {
	var (
		genre    string
		category string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the books in your library by shelf",
		Long: `Print the library grouped into To Read, Reading and Completed.
--genre keeps books whose genre contains the given text (case-sensitive).

Examples:
  readshelf list
  readshelf list --genre Fiction
  readshelf list --category reading --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var only catalog.Category
			if category != "" {
				var err error
				if only, err = catalog.ParseCategory(category); err != nil {
					return err
				}
			}

			ctrl.FilterByGenre(genre)

			if jsonOut {
				books := catalog.Filter{Genre: genre, Category: only}.Apply(ctrl.Library())
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(books)
			}

			panels := ctrl.RenderLibrary()
			if panels.Len() == 0 {
				if genre != "" {
					warn("No books matching genre %q", genre)
				} else {
					warn("Your library is empty. Find books with: readshelf search <query>")
				}
				return nil
			}
			for _, cat := range catalog.Categories {
				if only != "" && cat != only {
					continue
				}
				printPanel(cat, panels.Panel(cat))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Only books whose genre contains this text")
	cmd.Flags().StringVar(&category, "category", "", "Only one shelf: to-read, reading, completed")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("genre", completeGenres)
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}

func printPanel(cat catalog.Category, cards []library.Card) {
	header("%s (%d)", cat.Label(), len(cards))
	if len(cards) == 0 {
		fmt.Fprintln(out, color.HiBlackString("  (empty)"))
	}
	for _, c := range cards {
		fmt.Fprintf(out, "  %-14s %s\n", c.ID, c.Title)
		meta := c.Authors
		if c.Genre != "" {
			meta += " · " + color.CyanString(c.Genre)
		}
		fmt.Fprintf(out, "  %-14s %s\n", "", meta)
	}
	fmt.Fprintln(out)
}

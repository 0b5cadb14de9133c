package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/library"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

type searchResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Genre    string `json:"genre,omitempty"`
	CoverURL string `json:"coverUrl"`
	Saved    bool   `json:"saved"`
}

func newSearchCmd() *cobra.Command {
	var (
		genre   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search Google Books by title, author or keyword",
		Long: `Search the Google Books catalog. Use --genre to restrict results to a
subject; the genre alone is enough to browse a subject.

Examples:
  readshelf search dune
  readshelf search "ursula le guin" --genre Fiction
  readshelf search --genre History --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !volumes.IsGenre(genre) {
				warn("%q is not one of the listed genres; searching anyway", genre)
			}

			req, issued := ctrl.Search(query, genre)
			if !issued {
				return fmt.Errorf("provide a search query or use --genre")
			}
			done := ctrl.Fetch(cmd.Context(), req)
			ctrl.CompleteSearch(done)
			if done.Err != nil {
				return fmt.Errorf("%s: %w", library.SearchErrorMessage, done.Err)
			}

			panel := ctrl.RenderSearchResults()
			if jsonOut {
				results := make([]searchResult, 0, len(panel.Cards))
				for _, c := range panel.Cards {
					results = append(results, searchResult{
						ID: c.ID, Title: c.Title, Authors: c.Authors,
						Genre: c.Genre, CoverURL: c.CoverURL, Saved: c.Saved,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(panel.Cards) == 0 {
				warn("No books found for %s", req.Term)
				return nil
			}
			header("Results for %s (%d)", req.Term, len(panel.Cards))
			for _, c := range panel.Cards {
				mark := " "
				if c.Saved {
					mark = color.GreenString("✓")
				}
				fmt.Fprintf(out, " %s %-14s %s\n", mark, c.ID, c.Title)
				meta := c.Authors
				if c.Genre != "" {
					meta += " · " + color.CyanString(c.Genre)
				}
				fmt.Fprintf(out, "   %-14s %s\n", "", meta)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, color.HiBlackString("Save a book with: readshelf save <id>"))
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Restrict results to a subject (see 'readshelf genres')")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("genre", completeGenres)
	return cmd
}

func completeGenres(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return volumes.Genres, cobra.ShellCompDirectiveNoFileComp
}

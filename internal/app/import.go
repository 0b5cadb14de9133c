package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/catalog"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge an exported library into yours",
		Long: `Read a library export (JSON, or YAML by .yml/.yaml extension) and add
every book not already in your library. Existing books are left as they are.

A JSON file holding the browser's myBookLibrary value works too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var books []catalog.Book
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yml", ".yaml":
				books, err = catalog.ParseYAML(data)
			default:
				books, err = catalog.Parse(data)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			added, skipped, err := ctrl.Import(books)
			if err != nil {
				return err
			}
			ok("Imported %d books", added)
			if skipped > 0 {
				warn("Skipped %d already in your library", skipped)
			}
			return nil
		},
	}
}

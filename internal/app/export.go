package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/catalog"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library to stdout",
		Long: `Write the whole library to stdout. The JSON form is the stored value
itself and can be read back with 'readshelf import'.

Examples:
  readshelf export > library.json
  readshelf export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := ctrl.Library()

			var (
				data []byte
				err  error
			)
			switch format {
			case "json":
				data, err = catalog.Marshal(books)
				data = append(data, '\n')
			case "yaml", "yml":
				data, err = catalog.MarshalYAML(books)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	return cmd
}

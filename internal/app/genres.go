package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/volumes"
)

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genres accepted by --genre",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, g := range volumes.Genres {
				fmt.Fprintln(out, g)
			}
		},
	}
}

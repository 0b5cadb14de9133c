package app

import (
	"github.com/spf13/cobra"
)

func newCoversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covers",
		Short: "Download missing cover thumbnails into the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := ctrl.Library()
			if len(books) == 0 {
				warn("Your library is empty")
				return nil
			}

			res, err := cacheMgr.Fill(cmd.Context(), client, books, log)
			if err != nil {
				return err
			}
			ok("%d downloaded, %d already cached, %d without cover", res.Downloaded, res.Cached, res.Skipped)
			if res.Failed > 0 {
				warn("%d covers could not be downloaded (run with -v for details)", res.Failed)
			}
			header("Cache: %s", cacheMgr.Dir())
			return nil
		},
	}
}

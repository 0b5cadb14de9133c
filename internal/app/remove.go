package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <id>",
		Aliases:           []string{"rm"},
		Short:             "Remove a book from your library",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLibraryIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			b, found := ctrl.Book(id)
			if !found {
				return fmt.Errorf("book %q not in library", id)
			}
			if _, err := ctrl.Remove(id); err != nil {
				return err
			}
			if err := cacheMgr.Remove(id); err != nil {
				log.WithFields(logrus.Fields{"id": id}).WithError(err).Warn("could not remove cached cover")
			}
			ok("Removed %q", b.Title)
			return nil
		},
	}
}

func completeLibraryIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if ctrl == nil || len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, b := range ctrl.Library() {
		ids = append(ids, b.ID+"\t"+b.Title)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

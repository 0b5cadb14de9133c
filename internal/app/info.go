package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/tui"
	"github.com/blackwell-systems/readshelf/internal/util"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

func newInfoCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:               "info <id>",
		Short:             "Show details for a library book or Google Books volume",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLibraryIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			b, inLibrary := ctrl.Book(id)

			if inLibrary {
				header("Book: %s", b.ID)
				if cacheMgr.Exists(b.ID) && util.IsTTY() {
					if img := tui.RenderCover(cacheMgr.Path(b.ID), tui.DetectImageProtocol()); img != "" {
						fmt.Fprintln(out, img)
					}
				}
				printField("title", b.Title)
				printField("authors", b.Authors)
				if b.Genre != "" {
					printField("genre", b.Genre)
				}
				printField("shelf", b.Category.Label())
				cover := color.HiBlackString("not cached")
				if cacheMgr.Exists(b.ID) {
					cover = color.GreenString("cached") + "  " + cacheMgr.Path(b.ID)
				}
				printField("cover", cover)
			}
			if local {
				if !inLibrary {
					return fmt.Errorf("book %q not in library", id)
				}
				return nil
			}

			v, err := client.Volume(cmd.Context(), id)
			if err != nil {
				if inLibrary {
					warn("Could not fetch details from Google Books: %v", err)
					return nil
				}
				return err
			}
			printVolume(v, !inLibrary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Only show what is stored locally")
	return cmd
}

func printVolume(v *volumes.Volume, withHeader bool) {
	info := v.VolumeInfo
	if withHeader {
		header("Volume: %s", v.ID)
		printField("title", v.Title())
		printField("authors", v.AuthorsDisplay())
		if g := v.GenreString(); g != "" {
			printField("genre", g)
		}
		printField("saved", color.HiBlackString("no"))
	}
	if info.Subtitle != "" {
		printField("subtitle", info.Subtitle)
	}
	if info.Publisher != "" {
		printField("publisher", info.Publisher)
	}
	if info.PublishedDate != "" {
		printField("published", info.PublishedDate)
	}
	if info.PageCount > 0 {
		printField("pages", strconv.Itoa(info.PageCount))
	}
	if info.InfoLink != "" {
		printField("link", info.InfoLink)
	}

	if desc := v.PlainDescription(); strings.TrimSpace(desc) != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, desc)
	}
}

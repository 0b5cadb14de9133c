package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/cache"
	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/config"
	"github.com/blackwell-systems/readshelf/internal/library"
	"github.com/blackwell-systems/readshelf/internal/storage"
	"github.com/blackwell-systems/readshelf/internal/tui"
	"github.com/blackwell-systems/readshelf/internal/util"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

var (
	cfg      *config.Config
	log      *logrus.Logger
	store    storage.Store
	client   *volumes.Client
	ctrl     *library.Controller
	cacheMgr *cache.Manager
	logFile  io.Closer

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagEphemeral     bool
	flagVerbose       bool

	appVersion = "dev"
)

// out and errOut are where command output goes; tests swap them.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	appVersion = v
}

// offline commands run without opening the library store.
var offline = map[string]bool{
	"init":       true,
	"version":    true,
	"genres":     true,
	"completion": true,
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "readshelf",
		Short: "Search Google Books and keep a reading list in your terminal",
		Long: `readshelf searches the Google Books catalog and keeps the books you save
in a local library, sorted into three shelves: To Read, Reading, Completed.

Run 'readshelf' with no arguments to open the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return tui.Run(cmd.Context(), ctrl, cacheMgr)
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/readshelf/config.yml)")
	pf.BoolVar(&flagEphemeral, "ephemeral", false, "Keep the library in memory only")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		if flagConfig != "" {
			cfg, err = config.LoadFile(flagConfig)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		interactive := cmd == cmd.Root() && tui.ShouldUseTUI(cmd)
		if err := setupLogger(cfg.Log, interactive); err != nil {
			return err
		}

		if offline[cmd.Name()] {
			return nil
		}
		return openLibrary()
	}

	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return closeAll()
	}

	root.AddCommand(
		newInitCmd(),
		newSearchCmd(),
		newSaveCmd(),
		newRemoveCmd(),
		newMoveCmd(),
		newListCmd(),
		newInfoCmd(),
		newGenresCmd(),
		newExportCmd(),
		newImportCmd(),
		newCoversCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		_ = closeAll()
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// openLibrary wires the store, search client, cover cache and controller
// from cfg.
func openLibrary() error {
	backend := cfg.Storage.Backend
	if flagEphemeral {
		backend = "memory"
	}
	path := cfg.Storage.EffectivePath(config.DataDir())

	var err error
	store, err = storage.Open(backend, path)
	if err != nil {
		return fmt.Errorf("opening library store: %w", err)
	}
	log.WithFields(logrus.Fields{"backend": backend, "path": path}).Debug("store opened")

	client = volumes.New(cfg.Search.APIBase, cfg.Search.APIKey,
		volumes.WithMaxResults(cfg.Search.MaxResults),
		volumes.WithTimeout(cfg.Search.Timeout),
	)
	cacheMgr = cache.New(cfg.Covers.CacheDir)

	mgr := catalog.NewManager(store, cfg.Storage.EffectiveKey())
	ctrl, err = library.New(client, mgr, log)
	if err != nil {
		return err
	}
	return nil
}

func closeAll() error {
	var firstErr error
	if store != nil {
		firstErr = store.Close()
		store = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	return firstErr
}

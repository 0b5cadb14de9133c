package app

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readshelf/internal/config"
	"github.com/blackwell-systems/readshelf/internal/storage"
)

func newInitCmd() *cobra.Command {
	var (
		backend string
		apiKey  string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file. Without --config it goes to
~/.config/readshelf/config.yml.

Examples:
  readshelf init
  readshelf init --backend sqlite
  readshelf init --api-key-env MY_BOOKS_KEY --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(storage.Backends, backend) || backend == "memory" {
				return fmt.Errorf("unknown backend %q (want file, bolt or sqlite)", backend)
			}

			path := flagConfig
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			newCfg := *cfg
			newCfg.Storage.Backend = backend
			newCfg.Storage.Path = ""
			if apiKey != "" {
				newCfg.Search.APIKeyEnv = apiKey
			}
			if err := config.Save(path, &newCfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok("Wrote %s", path)
			printField("backend", backend)
			printField("library", newCfg.Storage.EffectivePath(config.DataDir()))
			printField("api key env", newCfg.Search.APIKeyEnv)
			if os.Getenv(newCfg.Search.APIKeyEnv) == "" {
				warn("%s is not set; searches run unauthenticated and share the public quota",
					strings.ToUpper(newCfg.Search.APIKeyEnv))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "file", "Library store: file, bolt or sqlite")
	cmd.Flags().StringVar(&apiKey, "api-key-env", "", "Environment variable holding a Google Books API key")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

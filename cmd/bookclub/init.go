// Init command for the bookclub CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/internal/jsonstore"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize bookclub storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fail(exitSysError, "init", err)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		store, err := jsonstore.Open(dataDir, nil)
		if err != nil {
			fail(exitSysError, "init", err)
		}
		if err := store.EnsureFiles(); err != nil {
			fail(exitSysError, "init", err)
		}

		fmt.Println("Bookclub initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}

// Shared helpers for bookclub CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/readersbay/bookclub/internal/jsonstore"
	"github.com/readersbay/bookclub/internal/logging"
	"github.com/readersbay/bookclub/internal/state"
	"github.com/readersbay/bookclub/pkg/types"
)

// loadApp resolves the data directory, opens the store, and loads the
// application state. Every command that touches data starts here.
func loadApp() (*state.App, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{DataDir: dataDir, LogLevel: configLogLevel}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := jsonstore.Open(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return state.Load(store, logger), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to the flag value for scripted use.
func promptPassword(flagValue, label string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

// fail prints the error and exits with the given code.
func fail(code int, context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	os.Exit(code)
}

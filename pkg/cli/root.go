// Package cli implements the qural commands: the combined web/MCP server,
// offline export and account management.
package cli

import (
	"fmt"
	"os"

	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configPath string
	dbPath     string
	debug      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:     "qural",
	Short:   "Tool-call dialogue annotation for Kazakh datasets",
	Long:    "qural serves a browser UI for annotating simulated tool-calling dialogues, stores them in SQLite and exports per-category JSON delivery files.",
	Version: version,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file path (default: $QURAL_DB or qural.db)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging and query tracing")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("QURAL_DB"); env != "" {
		return env
	}
	return "qural.db"
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return logger
}

func openStore() (*storage.SQLiteStorage, error) {
	return storage.NewSQLiteStorage(storage.Config{
		DatabasePath: getDBPath(),
		Debug:        debug,
	})
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

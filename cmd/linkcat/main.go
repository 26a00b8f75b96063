package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/linkcat/internal/build"
	"github.com/joestump/linkcat/internal/config"
	"github.com/joestump/linkcat/internal/db"
	"github.com/joestump/linkcat/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "linkcat",
		Short:         "Manage the links catalog",
		Long:          "linkcat creates, reads, updates, deletes, and full-text searches catalog links.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newLinksCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.Summary())
		},
	}
}

// openDriver loads config and opens the connection pool it describes.
func openDriver() (*db.Driver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}

	return db.New(db.Options{
		Driver:           cfg.DB.Driver,
		DSN:              cfg.DB.DSN,
		MaxOpenConns:     cfg.DB.MaxOpenConns,
		MaxIdleConns:     cfg.DB.MaxIdleConns,
		ConnMaxLifetime:  cfg.DB.ConnMaxLifetime,
		StatementTimeout: cfg.DB.StatementTimeout,
		Logger:           log,
	})
}

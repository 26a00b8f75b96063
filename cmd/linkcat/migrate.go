package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/linkcat/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the links schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDriver()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database); err != nil {
				return err
			}

			v, err := db.Version(database)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations complete (version %d)\n", v)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop the links schema and every row in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset drops all links; pass --yes to confirm")
			}
			database, err := openDriver()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Reset(database); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema dropped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm dropping the schema")
	return cmd
}

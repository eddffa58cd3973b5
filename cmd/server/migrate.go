package main

import (
	"fmt"

	"blog/internal/config"
	"blog/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		conn, err := db.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close(conn) }()

		if err := db.Migrate(conn); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

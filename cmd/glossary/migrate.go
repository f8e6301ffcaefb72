package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glossary/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the terms and table_counter tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDeps()
			if err != nil {
				return err
			}
			defer d.log.Sync()

			// Connect migrates on open.
			gdb, err := d.openDB()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", d.cfg.DB.Driver)
			return db.Close(gdb)
		},
	}
}

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdGet = &cobra.Command{
	Use:   "get [flags] KEY ...",
	Short: "Print the value stored under each KEY",
	Long: `
The "get" command loads the settings file and prints the value of each
given key, one per line.

EXIT STATUS
===========

Exit status is 0 if every key was found, and non-zero if any key was
missing or the file could not be loaded.
`,
	Args:              cobra.MinimumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(args)
	},
}

func init() {
	cmdRoot.AddCommand(cmdGet)
}

func runGet(keys []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	defer table.Close()

	for _, key := range keys {
		value, found := table.Get(key)
		if !found {
			return errors.Errorf("key %q not found", key)
		}
		fmt.Println(value)
	}
	return nil
}

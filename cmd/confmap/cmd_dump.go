package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdDump = &cobra.Command{
	Use:   "dump",
	Short: "Print every key=value pair in the settings file",
	Long: `
The "dump" command loads the settings file and prints the effective
key=value pairs after overrides, one per line.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump()
	},
}

func init() {
	cmdRoot.AddCommand(cmdDump)
}

func runDump() error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	defer table.Close()

	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		fmt.Printf("%s=%s\n", key, value)
	}
	return nil
}

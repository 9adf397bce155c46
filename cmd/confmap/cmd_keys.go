package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdKeys = &cobra.Command{
	Use:   "keys",
	Short: "List every key in the settings file",
	Long: `
The "keys" command loads the settings file and prints every stored key,
one per line, in the table's bucket scan order.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeys()
	},
}

func init() {
	cmdRoot.AddCommand(cmdKeys)
}

func runKeys() error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	defer table.Close()

	for _, key := range table.Keys() {
		fmt.Println(key)
	}
	return nil
}

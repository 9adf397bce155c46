package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theflywheel/confmap"
)

var version = "0.1.0"

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "confmap",
	Short: "Inspect key=value settings files",
	Long: `
confmap loads a key=value settings file into a fixed-size hash table and
answers queries against it. Later lines override earlier ones, so layered
settings files can be inspected the way the loading application sees them.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if globalOptions.Verbose {
			log.SetLevel(log.DebugLevel)
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
}

// GlobalOptions bundles the options shared by every subcommand.
type GlobalOptions struct {
	File    string
	Verbose bool
}

var globalOptions GlobalOptions

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVarP(&globalOptions.File, "file", "f", "", "settings file to load")
	f.BoolVarP(&globalOptions.Verbose, "verbose", "v", false, "enable debug tracing")
}

// loadTable builds a table from the settings file named by --file.
func loadTable() (*confmap.Table, error) {
	var options []func(*confmap.Config)
	if globalOptions.Verbose {
		options = append(options, confmap.WithLogger(log.StandardLogger()))
	}

	table := confmap.New(options...)
	if err := confmap.LoadFile(table, globalOptions.File); err != nil {
		table.Close()
		return nil, err
	}
	return table, nil
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

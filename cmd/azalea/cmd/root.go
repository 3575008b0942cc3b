package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "azalea",
	Short: "Azalea - a forgiving little command language",
	Long: `Azalea is an embeddable interpreter for a small, synonym-rich
command language. Statements read like loose English:

  form total from 3 plus 4
  say total
  loop 3 do say step end

With no arguments the interactive REPL starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.azalea.toml)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	azalea "github.com/xazalea/language"
)

var evalSource string

var runCmd = &cobra.Command{
	Use:   "run [file.az]",
	Short: "Run an Azalea script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := evalSource
		if source == "" {
			if len(args) < 1 {
				return fmt.Errorf("usage: azalea run <file.az> (or -e \"code\")")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", args[0], err)
			}
			source = string(data)
		}

		ip := azalea.NewRuntime()
		result := ip.Execute(source)
		if result.Tag != azalea.VTVoid {
			fmt.Println(result.String())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "evaluate code given on the command line")
	rootCmd.AddCommand(runCmd)
}

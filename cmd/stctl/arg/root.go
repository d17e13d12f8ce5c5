package arg

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stctl",
	Short: "stctl is the command line tool for solidtime-tracker",
	Long: `stctl allows you to interact with the solidtime-tracker daemon via D-Bus.
			You can use it to query tracking status and pause or resume tracking.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/cli"
	"github.com/example/basecamp/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "basecamp",
		Short:   "basecamp - personal activity, location and finance tracker",
		Version: version.String(),
		Long: `basecamp tracks outdoor activities, the locations they happen at,
gear manufacturers and the money spent along the way.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.LocationCmd())
	rootCmd.AddCommand(cli.ManufacturerCmd())
	rootCmd.AddCommand(cli.TransactionCmd())
	rootCmd.AddCommand(cli.UserCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/wire"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and seed the configured superuser",
	Long: `Initialize the basecamp data directory: opens (and migrates) the
database and creates the initial superuser when one is configured and
does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Touching any service opens and migrates the database.
		if err := wire.SeedSuperuser(ctx); err != nil {
			return err
		}

		fmt.Printf("%s Initialized %s\n", color.GreenString("✓"), wire.Config().DatabasePath)
		return nil
	},
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return initCmd
}

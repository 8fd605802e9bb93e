package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/wire"
)

var manufacturerCmd = &cobra.Command{
	Use:   "manufacturer",
	Short: "Manage manufacturers",
	Long:  "Create, list, show, update and delete manufacturers, and manage access grants",
}

var manufacturerCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new manufacturer (hidden by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := models.ManufacturerCreate{Name: args[0]}
		create.ShortName, _ = cmd.Flags().GetString("short-name")
		create.Description, _ = cmd.Flags().GetString("description")
		create.Website, _ = cmd.Flags().GetString("website")
		create.Hidden = boolFlag(cmd, "hidden")

		m, err := wire.ManufacturerService().CreateManufacturer(ctx, create)
		if err != nil {
			return fmt.Errorf("failed to create manufacturer: %w", err)
		}

		fmt.Printf("%s Created manufacturer %s: %s\n", color.GreenString("✓"), m.ID, m.Name)
		return nil
	},
}

var manufacturerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List manufacturers",
	Long: `List manufacturers. With --user and no other filters the listing
shows public manufacturers plus those the user holds a grant for.
--role narrows to grants with those roles; --role with no values selects
manufacturers the user holds no grant for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := models.ManufacturerFilters{}
		filters.Skip, filters.Limit = pageFlags(cmd)
		filters.Hidden = boolFlag(cmd, "hidden")

		if v, _ := cmd.Flags().GetString("user"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			filters.UserID = &id
		}
		if cmd.Flags().Changed("role") {
			roles, _ := cmd.Flags().GetStringArray("role")
			filters.AccessRoles = make([]models.AccessRole, 0, len(roles))
			for _, r := range roles {
				filters.AccessRoles = append(filters.AccessRoles, models.AccessRole(r))
			}
		}

		manufacturers, total, err := wire.ManufacturerService().ListManufacturers(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to list manufacturers: %w", err)
		}

		if len(manufacturers) == 0 {
			fmt.Println("No manufacturers found")
			return nil
		}
		fmt.Printf("Showing %d of %d manufacturer(s):\n\n", len(manufacturers), total)
		for _, entry := range manufacturers {
			m := entry.Manufacturer
			visibility := "public"
			if m.Hidden {
				visibility = "hidden"
			}
			role := "-"
			if entry.Role != nil {
				role = string(*entry.Role)
			}
			fmt.Printf("%s  %-6s  %-6s  %s\n", m.ID, visibility, role, m.Name)
		}
		return nil
	},
}

var manufacturerShowCmd = &cobra.Command{
	Use:   "show [id-or-name]",
	Short: "Show manufacturer details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var m *models.Manufacturer
		id, err := parseID(args[0])
		if err == nil {
			m, err = wire.ManufacturerService().GetManufacturer(ctx, id)
		} else {
			m, err = wire.ManufacturerService().GetManufacturerByName(ctx, args[0], nil)
		}
		if err != nil {
			return fmt.Errorf("failed to get manufacturer: %w", err)
		}
		if m == nil {
			return fmt.Errorf("manufacturer %q not found", args[0])
		}

		fmt.Printf("Manufacturer: %s (%s)\n", m.Name, m.ID)
		if m.ShortName != "" {
			fmt.Printf("Short name: %s\n", m.ShortName)
		}
		if m.Description != "" {
			fmt.Printf("Description: %s\n", m.Description)
		}
		if m.Website != "" {
			fmt.Printf("Website: %s\n", m.Website)
		}
		fmt.Printf("Hidden: %t\n", m.Hidden)

		accesses, err := wire.ManufacturerService().ListAccesses(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("failed to list accesses: %w", err)
		}
		for _, a := range accesses {
			fmt.Printf("Access: %s (%s)\n", a.UserID, a.Role)
		}
		return nil
	},
}

var manufacturerUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a manufacturer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		update := models.ManufacturerUpdate{
			Name:        stringField(cmd, "name"),
			ShortName:   stringField(cmd, "short-name"),
			Description: stringField(cmd, "description"),
			Website:     stringField(cmd, "website"),
			Hidden:      boolField(cmd, "hidden"),
		}

		if err := wire.ManufacturerService().UpdateManufacturer(ctx, id, update); err != nil {
			return fmt.Errorf("failed to update manufacturer: %w", err)
		}

		fmt.Printf("%s Updated manufacturer %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var manufacturerDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a manufacturer (removes its grants)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.ManufacturerService().DeleteManufacturer(ctx, id); err != nil {
			return fmt.Errorf("failed to delete manufacturer: %w", err)
		}

		fmt.Printf("%s Deleted manufacturer %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var manufacturerGrantCmd = &cobra.Command{
	Use:   "grant [manufacturer-id] [user-id]",
	Short: "Grant a user access to a manufacturer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		manufacturerID, err := parseID(args[0])
		if err != nil {
			return err
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}
		role, _ := cmd.Flags().GetString("role")

		err = wire.ManufacturerService().GrantAccess(ctx, models.ManufacturerAccess{
			ManufacturerID: manufacturerID,
			UserID:         userID,
			Role:           models.AccessRole(role),
		})
		if err != nil {
			return fmt.Errorf("failed to grant access: %w", err)
		}

		fmt.Printf("%s Granted %s access to %s\n", color.GreenString("✓"), role, userID)
		return nil
	},
}

var manufacturerRevokeCmd = &cobra.Command{
	Use:   "revoke [manufacturer-id] [user-id]",
	Short: "Revoke a user's access to a manufacturer",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		manufacturerID, err := parseID(args[0])
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		if all {
			if len(args) > 1 {
				return fmt.Errorf("--all does not take a user ID")
			}
			if err := wire.ManufacturerService().RevokeAllAccesses(ctx, manufacturerID); err != nil {
				return fmt.Errorf("failed to revoke accesses: %w", err)
			}
			fmt.Printf("%s Revoked all access to %s\n", color.GreenString("✓"), manufacturerID)
			return nil
		}

		if len(args) < 2 {
			return fmt.Errorf("user ID required unless --all is given")
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := wire.ManufacturerService().RevokeAccess(ctx, manufacturerID, userID); err != nil {
			return fmt.Errorf("failed to revoke access: %w", err)
		}

		fmt.Printf("%s Revoked access of %s\n", color.GreenString("✓"), userID)
		return nil
	},
}

func init() {
	manufacturerCreateCmd.Flags().StringP("short-name", "s", "", "Short name")
	manufacturerCreateCmd.Flags().StringP("description", "d", "", "Description")
	manufacturerCreateCmd.Flags().String("website", "", "Website URL")
	manufacturerCreateCmd.Flags().Bool("hidden", true, "Hide from other users")

	manufacturerListCmd.Flags().String("user", "", "Scope the listing to this user")
	manufacturerListCmd.Flags().Bool("hidden", false, "Filter by visibility")
	manufacturerListCmd.Flags().StringArray("role", nil, "Filter by granted role (repeatable)")
	addPageFlags(manufacturerListCmd)

	manufacturerUpdateCmd.Flags().String("name", "", "New name")
	manufacturerUpdateCmd.Flags().StringP("short-name", "s", "", "New short name (empty clears)")
	manufacturerUpdateCmd.Flags().StringP("description", "d", "", "New description (empty clears)")
	manufacturerUpdateCmd.Flags().String("website", "", "New website (empty clears)")
	manufacturerUpdateCmd.Flags().Bool("hidden", true, "New visibility")

	manufacturerGrantCmd.Flags().StringP("role", "r", string(models.RoleShared), "Role to grant")

	manufacturerRevokeCmd.Flags().Bool("all", false, "Revoke every grant for the manufacturer")

	manufacturerCmd.AddCommand(manufacturerCreateCmd)
	manufacturerCmd.AddCommand(manufacturerListCmd)
	manufacturerCmd.AddCommand(manufacturerShowCmd)
	manufacturerCmd.AddCommand(manufacturerUpdateCmd)
	manufacturerCmd.AddCommand(manufacturerDeleteCmd)
	manufacturerCmd.AddCommand(manufacturerGrantCmd)
	manufacturerCmd.AddCommand(manufacturerRevokeCmd)
}

// ManufacturerCmd returns the manufacturer command
func ManufacturerCmd() *cobra.Command {
	return manufacturerCmd
}

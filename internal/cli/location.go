package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/wire"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations",
	Long:  "Create, list, show, update and delete locations, and manage favorites",
}

var locationCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := models.LocationCreate{Name: args[0]}
		create.Abbreviation, _ = cmd.Flags().GetString("abbreviation")
		create.Website, _ = cmd.Flags().GetString("website")
		if v, _ := cmd.Flags().GetString("type"); v != "" {
			create.Type = models.LocationType(v)
		}
		if v, _ := cmd.Flags().GetString("parent"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			create.ParentID = &id
		}
		types, _ := cmd.Flags().GetStringArray("activity-type")
		for _, t := range types {
			create.ActivityTypes = append(create.ActivityTypes, models.ActivityType(t))
		}

		location, err := wire.LocationService().CreateLocation(ctx, create)
		if err != nil {
			return fmt.Errorf("failed to create location: %w", err)
		}

		fmt.Printf("%s Created location %s: %s\n", color.GreenString("✓"), location.ID, location.Name)
		return nil
	},
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := models.LocationFilters{}
		filters.Skip, filters.Limit = pageFlags(cmd)

		types, _ := cmd.Flags().GetStringArray("type")
		for _, t := range types {
			filters.Types = append(filters.Types, models.LocationType(t))
		}
		parents, _ := cmd.Flags().GetStringArray("parent")
		parentIDs, err := parseNullableIDs(parents)
		if err != nil {
			return err
		}
		filters.ParentIDs = parentIDs

		locations, total, err := wire.LocationService().ListLocations(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to list locations: %w", err)
		}

		if len(locations) == 0 {
			fmt.Println("No locations found")
			return nil
		}
		fmt.Printf("Showing %d of %d location(s):\n\n", len(locations), total)
		for _, l := range locations {
			fmt.Printf("%s  %-6s  %s", l.ID, l.Type, l.Name)
			if l.Abbreviation != "" {
				fmt.Printf(" (%s)", l.Abbreviation)
			}
			fmt.Println()
		}
		return nil
	},
}

var locationShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show location details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		location, err := wire.LocationService().GetLocation(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get location: %w", err)
		}
		if location == nil {
			return fmt.Errorf("location %s not found", id)
		}

		fmt.Printf("Location: %s (%s)\n", location.Name, location.ID)
		fmt.Printf("Type: %s\n", location.Type)
		if location.Abbreviation != "" {
			fmt.Printf("Abbreviation: %s\n", location.Abbreviation)
		}
		if location.Website != "" {
			fmt.Printf("Website: %s\n", location.Website)
		}
		fmt.Printf("Parent: %s\n", formatID(location.ParentID))
		if len(location.ActivityTypes) > 0 {
			types := make([]string, len(location.ActivityTypes))
			for i, t := range location.ActivityTypes {
				types[i] = string(t)
			}
			fmt.Printf("Activity types: %s\n", strings.Join(types, ", "))
		}
		return nil
	},
}

var locationUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a location",
	Long: `Update a location. Only the given flags change; empty values clear
optional fields. --activity-type replaces the whole set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		update := models.LocationUpdate{
			Name:         stringField(cmd, "name"),
			Abbreviation: stringField(cmd, "abbreviation"),
			Website:      stringField(cmd, "website"),
		}
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			if v == "" {
				update.Type = models.Clear[models.LocationType]()
			} else {
				update.Type = models.Set(models.LocationType(v))
			}
		}
		if update.ParentID, err = idField(cmd, "parent"); err != nil {
			return err
		}
		if cmd.Flags().Changed("activity-type") {
			types, _ := cmd.Flags().GetStringArray("activity-type")
			update.ActivityTypes = make([]models.ActivityType, 0, len(types))
			for _, t := range types {
				update.ActivityTypes = append(update.ActivityTypes, models.ActivityType(t))
			}
		}

		if err := wire.LocationService().UpdateLocation(ctx, id, update); err != nil {
			return fmt.Errorf("failed to update location: %w", err)
		}

		fmt.Printf("%s Updated location %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var locationDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.LocationService().DeleteLocation(ctx, id); err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}

		fmt.Printf("%s Deleted location %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var locationFavoriteCmd = &cobra.Command{
	Use:   "favorite [location-id] [user-id]",
	Short: "Mark a location as a user's favorite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		locationID, err := parseID(args[0])
		if err != nil {
			return err
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := wire.LocationService().FavoriteLocation(ctx, locationID, userID); err != nil {
			return fmt.Errorf("failed to favorite location: %w", err)
		}
		fmt.Printf("%s Favorited location %s\n", color.GreenString("✓"), locationID)
		return nil
	},
}

var locationUnfavoriteCmd = &cobra.Command{
	Use:   "unfavorite [location-id] [user-id]",
	Short: "Remove a location from a user's favorites",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		locationID, err := parseID(args[0])
		if err != nil {
			return err
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := wire.LocationService().UnfavoriteLocation(ctx, locationID, userID); err != nil {
			return fmt.Errorf("failed to unfavorite location: %w", err)
		}
		fmt.Printf("%s Unfavorited location %s\n", color.GreenString("✓"), locationID)
		return nil
	},
}

var locationFavoritesCmd = &cobra.Command{
	Use:   "favorites [user-id]",
	Short: "List a user's favorite locations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}

		locations, err := wire.LocationService().FavoriteLocations(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list favorites: %w", err)
		}

		if len(locations) == 0 {
			fmt.Println("No favorites found")
			return nil
		}
		for _, l := range locations {
			fmt.Printf("%s  %-6s  %s\n", l.ID, l.Type, l.Name)
		}
		return nil
	},
}

func init() {
	locationCreateCmd.Flags().StringP("abbreviation", "a", "", "Short name")
	locationCreateCmd.Flags().String("website", "", "Website URL")
	locationCreateCmd.Flags().String("type", "", "Location type (defaults to other)")
	locationCreateCmd.Flags().String("parent", "", "Parent location ID")
	locationCreateCmd.Flags().StringArray("activity-type", nil, "Supported activity type (repeatable)")

	locationListCmd.Flags().StringArray("type", nil, "Filter by location type (repeatable)")
	locationListCmd.Flags().StringArray("parent", nil, "Filter by parent ID, or \"null\" (repeatable)")
	addPageFlags(locationListCmd)

	locationUpdateCmd.Flags().String("name", "", "New name")
	locationUpdateCmd.Flags().StringP("abbreviation", "a", "", "New short name (empty clears)")
	locationUpdateCmd.Flags().String("website", "", "New website (empty clears)")
	locationUpdateCmd.Flags().String("type", "", "New location type (empty resets to other)")
	locationUpdateCmd.Flags().String("parent", "", "New parent ID (empty clears)")
	locationUpdateCmd.Flags().StringArray("activity-type", nil, "Replacement activity type set (repeatable)")

	locationCmd.AddCommand(locationCreateCmd)
	locationCmd.AddCommand(locationListCmd)
	locationCmd.AddCommand(locationShowCmd)
	locationCmd.AddCommand(locationUpdateCmd)
	locationCmd.AddCommand(locationDeleteCmd)
	locationCmd.AddCommand(locationFavoriteCmd)
	locationCmd.AddCommand(locationUnfavoriteCmd)
	locationCmd.AddCommand(locationFavoritesCmd)
}

// LocationCmd returns the location command
func LocationCmd() *cobra.Command {
	return locationCmd
}

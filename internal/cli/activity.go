package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/wire"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage activities",
	Long:  "Create, list, show, update and delete tracked activities",
}

var activityCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := models.ActivityCreate{Title: args[0]}
		create.Description, _ = cmd.Flags().GetString("description")

		if v, _ := cmd.Flags().GetString("start"); v != "" {
			start, err := parseTime(v)
			if err != nil {
				return err
			}
			create.Start = &start
		}
		if v, _ := cmd.Flags().GetString("duration"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", v, err)
			}
			create.Duration = &d
		}
		if v, _ := cmd.Flags().GetString("location"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			ref := models.LocationByID(id)
			create.Location = &ref
		}
		if v, _ := cmd.Flags().GetString("parent"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			create.ParentID = &id
		}

		types, _ := cmd.Flags().GetStringArray("type")
		for _, t := range types {
			create.Types = append(create.Types, models.ActivityType(t))
		}
		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}
		create.UserIDs = userIDs

		activity, err := wire.ActivityService().CreateActivity(ctx, create)
		if err != nil {
			return fmt.Errorf("failed to create activity: %w", err)
		}

		fmt.Printf("%s Created activity %s: %s\n", color.GreenString("✓"), activity.ID, activity.Title)
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := models.ActivityFilters{}
		filters.Skip, filters.Limit = pageFlags(cmd)

		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}
		filters.UserIDs = userIDs

		locations, _ := cmd.Flags().GetStringArray("location")
		filters.LocationIDs, err = parseNullableIDs(locations)
		if err != nil {
			return err
		}
		parents, _ := cmd.Flags().GetStringArray("parent")
		filters.ParentIDs, err = parseNullableIDs(parents)
		if err != nil {
			return err
		}
		types, _ := cmd.Flags().GetStringArray("type")
		filters.Types = parseNullableStrings(types)

		activities, total, err := wire.ActivityService().ListActivities(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found")
			return nil
		}

		fmt.Printf("Showing %d of %d activity(ies):\n\n", len(activities), total)
		for _, a := range activities {
			fmt.Printf("%s  %-19s  %s\n", a.ID, formatTime(a.Start), a.Title)
		}
		return nil
	},
}

var activityShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show activity details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		activity, err := wire.ActivityService().GetActivity(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}
		if activity == nil {
			return fmt.Errorf("activity %s not found", id)
		}

		fmt.Printf("Activity: %s (%s)\n", activity.Title, activity.ID)
		if activity.Description != "" {
			fmt.Printf("Description: %s\n", activity.Description)
		}
		fmt.Printf("Start: %s\n", formatTime(activity.Start))
		if activity.Duration != nil {
			fmt.Printf("Duration: %s\n", activity.Duration)
		}
		fmt.Printf("Location: %s\n", formatID(activity.LocationID))
		fmt.Printf("Parent: %s\n", formatID(activity.ParentID))
		if len(activity.Types) > 0 {
			types := make([]string, len(activity.Types))
			for i, t := range activity.Types {
				types[i] = string(t)
			}
			fmt.Printf("Types: %s\n", strings.Join(types, ", "))
		}
		for _, u := range activity.UserIDs {
			fmt.Printf("User: %s\n", u)
		}
		return nil
	},
}

var activityUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an activity",
	Long: `Update an activity. Only the given flags change; passing an empty
value (or "null" for references) clears the field. --type and --user
replace the whole set; pass them with no values to clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		update := models.ActivityUpdate{
			Title:       stringField(cmd, "title"),
			Description: stringField(cmd, "description"),
		}
		if update.Start, err = timeField(cmd, "start"); err != nil {
			return err
		}
		if cmd.Flags().Changed("duration") {
			v, _ := cmd.Flags().GetString("duration")
			if v == "" || strings.EqualFold(v, nullWord) {
				update.Duration = models.Clear[time.Duration]()
			} else {
				d, err := time.ParseDuration(v)
				if err != nil {
					return fmt.Errorf("invalid duration %q: %w", v, err)
				}
				update.Duration = models.Set(d)
			}
		}
		locField, err := idField(cmd, "location")
		if err != nil {
			return err
		}
		if locID, ok := locField.Value(); ok {
			update.Location = models.Set(models.LocationByID(locID))
		} else if locField.IsClear() {
			update.Location = models.Clear[models.LocationRef]()
		}
		if update.ParentID, err = idField(cmd, "parent"); err != nil {
			return err
		}

		if cmd.Flags().Changed("type") {
			types, _ := cmd.Flags().GetStringArray("type")
			update.Types = make([]models.ActivityType, 0, len(types))
			for _, t := range types {
				update.Types = append(update.Types, models.ActivityType(t))
			}
		}
		if cmd.Flags().Changed("user") {
			users, _ := cmd.Flags().GetStringArray("user")
			userIDs, err := parseIDs(users)
			if err != nil {
				return err
			}
			update.UserIDs = userIDs
		}

		if err := wire.ActivityService().UpdateActivity(ctx, id, update); err != nil {
			return fmt.Errorf("failed to update activity: %w", err)
		}

		fmt.Printf("%s Updated activity %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.ActivityService().DeleteActivity(ctx, id); err != nil {
			return fmt.Errorf("failed to delete activity: %w", err)
		}

		fmt.Printf("%s Deleted activity %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var activityLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations the given users have activities at",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}
		skip, limit := pageFlags(cmd)

		locations, total, err := wire.ActivityService().ActivityLocations(ctx, userIDs, skip, limit)
		if err != nil {
			return fmt.Errorf("failed to list activity locations: %w", err)
		}

		if len(locations) == 0 {
			fmt.Println("No locations found")
			return nil
		}
		fmt.Printf("Showing %d of %d location(s):\n\n", len(locations), total)
		for _, l := range locations {
			fmt.Printf("%s  %-6s  %s\n", l.ID, l.Type, l.Name)
		}
		return nil
	},
}

var activityTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the activity types the given users have used",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}

		types, err := wire.ActivityService().ActivityTypes(ctx, userIDs)
		if err != nil {
			return fmt.Errorf("failed to list activity types: %w", err)
		}

		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	activityCreateCmd.Flags().StringP("description", "d", "", "Activity description")
	activityCreateCmd.Flags().String("start", "", "Start time (RFC3339 or YYYY-MM-DD, UTC)")
	activityCreateCmd.Flags().String("duration", "", "Duration, e.g. 1h30m")
	activityCreateCmd.Flags().String("location", "", "Location ID")
	activityCreateCmd.Flags().String("parent", "", "Parent activity ID")
	activityCreateCmd.Flags().StringArray("type", nil, "Activity type (repeatable)")
	activityCreateCmd.Flags().StringArray("user", nil, "Participant user ID (repeatable)")

	activityListCmd.Flags().StringArray("user", nil, "Filter by participant (repeatable)")
	activityListCmd.Flags().StringArray("location", nil, "Filter by location ID, or \"null\" (repeatable)")
	activityListCmd.Flags().StringArray("parent", nil, "Filter by parent ID, or \"null\" (repeatable)")
	activityListCmd.Flags().StringArray("type", nil, "Filter by type, or \"null\" (repeatable)")
	addPageFlags(activityListCmd)

	activityUpdateCmd.Flags().String("title", "", "New title")
	activityUpdateCmd.Flags().StringP("description", "d", "", "New description (empty clears)")
	activityUpdateCmd.Flags().String("start", "", "New start time (empty clears)")
	activityUpdateCmd.Flags().String("duration", "", "New duration (empty clears)")
	activityUpdateCmd.Flags().String("location", "", "New location ID (empty clears)")
	activityUpdateCmd.Flags().String("parent", "", "New parent ID (empty clears)")
	activityUpdateCmd.Flags().StringArray("type", nil, "Replacement type set (repeatable)")
	activityUpdateCmd.Flags().StringArray("user", nil, "Replacement participant set (repeatable)")

	activityLocationsCmd.Flags().StringArray("user", nil, "User ID (repeatable)")
	addPageFlags(activityLocationsCmd)
	activityTypesCmd.Flags().StringArray("user", nil, "User ID (repeatable)")

	activityCmd.AddCommand(activityCreateCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityUpdateCmd)
	activityCmd.AddCommand(activityDeleteCmd)
	activityCmd.AddCommand(activityLocationsCmd)
	activityCmd.AddCommand(activityTypesCmd)
}

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	return activityCmd
}

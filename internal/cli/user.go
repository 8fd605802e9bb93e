package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/wire"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
	Long:  "Create, list, show, update and delete accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := models.UserCreate{Email: args[0]}
		create.Password, _ = cmd.Flags().GetString("password")
		create.FullName, _ = cmd.Flags().GetString("full-name")
		create.IsSuperuser, _ = cmd.Flags().GetBool("superuser")
		create.IsActive = boolFlag(cmd, "active")

		user, err := wire.UserService().CreateUser(ctx, create)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("%s Created user %s: %s\n", color.GreenString("✓"), user.ID, user.Email)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts ordered by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := models.UserFilters{}
		filters.Skip, filters.Limit = pageFlags(cmd)

		users, total, err := wire.UserService().ListUsers(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}
		fmt.Printf("Showing %d of %d user(s):\n\n", len(users), total)
		for _, u := range users {
			flags := ""
			if !u.IsActive {
				flags += " [inactive]"
			}
			if u.IsSuperuser {
				flags += " [superuser]"
			}
			fmt.Printf("%s  %s%s\n", u.ID, u.Email, flags)
		}
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show [id-or-email]",
	Short: "Show account details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var user *models.User
		id, err := parseID(args[0])
		if err == nil {
			user, err = wire.UserService().GetUser(ctx, id)
		} else {
			user, err = wire.UserService().GetUserByEmail(ctx, args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("user %q not found", args[0])
		}

		fmt.Printf("User: %s (%s)\n", user.Email, user.ID)
		if user.FullName != "" {
			fmt.Printf("Full name: %s\n", user.FullName)
		}
		fmt.Printf("Active: %t\n", user.IsActive)
		fmt.Printf("Superuser: %t\n", user.IsSuperuser)
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an account",
	Long: `Update an account. Only the given flags change; an empty --full-name
clears it. Email and password cannot be cleared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		update := models.UserUpdate{
			Email:       stringField(cmd, "email"),
			Password:    stringField(cmd, "password"),
			FullName:    stringField(cmd, "full-name"),
			IsActive:    boolField(cmd, "active"),
			IsSuperuser: boolField(cmd, "superuser"),
		}

		if err := wire.UserService().UpdateUser(ctx, id, update); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("%s Updated user %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.UserService().DeleteUser(ctx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Printf("%s Deleted user %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var userAuthCmd = &cobra.Command{
	Use:   "auth [email]",
	Short: "Check credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		password, _ := cmd.Flags().GetString("password")

		user, err := wire.UserService().Authenticate(ctx, args[0], password)
		if err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
		if user == nil {
			return fmt.Errorf("invalid credentials")
		}

		fmt.Printf("%s Authenticated as %s (%s)\n", color.GreenString("✓"), user.Email, user.ID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringP("password", "p", "", "Password (10-255 characters)")
	userCreateCmd.Flags().String("full-name", "", "Full name")
	userCreateCmd.Flags().Bool("superuser", false, "Grant superuser rights")
	userCreateCmd.Flags().Bool("active", true, "Account is active")

	addPageFlags(userListCmd)

	userUpdateCmd.Flags().String("email", "", "New email")
	userUpdateCmd.Flags().StringP("password", "p", "", "New password")
	userUpdateCmd.Flags().String("full-name", "", "New full name (empty clears)")
	userUpdateCmd.Flags().Bool("active", true, "New active state")
	userUpdateCmd.Flags().Bool("superuser", false, "New superuser state")

	userAuthCmd.Flags().StringP("password", "p", "", "Password")

	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userAuthCmd)
}

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	return userCmd
}

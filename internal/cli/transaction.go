package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/wire"
)

var transactionCmd = &cobra.Command{
	Use:     "transaction",
	Aliases: []string{"tx"},
	Short:   "Manage transactions",
	Long:    "Create, list, show, update and delete financial transactions",
}

var transactionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new transaction",
	Long:  "Create a transaction. Every field is optional; negative amounts are expenses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		create := models.TransactionCreate{}
		create.Description, _ = cmd.Flags().GetString("description")
		create.Note, _ = cmd.Flags().GetString("note")

		if v, _ := cmd.Flags().GetString("activity"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			create.ActivityID = &id
		}
		if v, _ := cmd.Flags().GetString("location"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			create.LocationID = &id
		}
		if v, _ := cmd.Flags().GetString("user"); v != "" {
			id, err := parseID(v)
			if err != nil {
				return err
			}
			create.UserID = &id
		}
		if v, _ := cmd.Flags().GetString("date"); v != "" {
			t, err := parseTime(v)
			if err != nil {
				return err
			}
			create.Date = &t
		}
		if cmd.Flags().Changed("amount") {
			amount, _ := cmd.Flags().GetInt64("amount")
			create.Amount = &amount
		}
		if v, _ := cmd.Flags().GetString("category"); v != "" {
			c := models.TransactionCategory(v)
			create.Category = &c
		}

		t, err := wire.TransactionService().CreateTransaction(ctx, create)
		if err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		fmt.Printf("%s Created transaction %s\n", color.GreenString("✓"), t.ID)
		return nil
	},
}

var transactionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := models.TransactionFilters{}
		filters.Skip, filters.Limit = pageFlags(cmd)

		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}
		filters.UserIDs = userIDs

		activities, _ := cmd.Flags().GetStringArray("activity")
		activityIDs, err := parseIDs(activities)
		if err != nil {
			return err
		}
		filters.ActivityIDs = activityIDs

		transactions, total, err := wire.TransactionService().ListTransactions(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}

		if len(transactions) == 0 {
			fmt.Println("No transactions found")
			return nil
		}
		fmt.Printf("Showing %d of %d transaction(s):\n\n", len(transactions), total)
		for _, t := range transactions {
			amount := "-"
			if t.Amount != nil {
				amount = strconv.FormatInt(*t.Amount, 10)
			}
			category := "-"
			if t.Category != nil {
				category = string(*t.Category)
			}
			fmt.Printf("%s  %-19s  %8s  %-10s  %s\n", t.ID, formatTime(t.Date), amount, category, t.Description)
		}
		return nil
	},
}

var transactionShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show transaction details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		t, err := wire.TransactionService().GetTransaction(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get transaction: %w", err)
		}
		if t == nil {
			return fmt.Errorf("transaction %s not found", id)
		}

		fmt.Printf("Transaction: %s\n", t.ID)
		fmt.Printf("Date: %s\n", formatTime(t.Date))
		if t.Amount != nil {
			fmt.Printf("Amount: %d\n", *t.Amount)
		}
		if t.Category != nil {
			fmt.Printf("Category: %s\n", *t.Category)
		}
		if t.Description != "" {
			fmt.Printf("Description: %s\n", t.Description)
		}
		if t.Note != "" {
			fmt.Printf("Note: %s\n", t.Note)
		}
		fmt.Printf("Activity: %s\n", formatID(t.ActivityID))
		fmt.Printf("Location: %s\n", formatID(t.LocationID))
		fmt.Printf("User: %s\n", formatID(t.UserID))
		return nil
	},
}

var transactionUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a transaction",
	Long: `Update a transaction. Only the given flags change; empty values (or
"null" for references) clear the field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		update := models.TransactionUpdate{
			Description: stringField(cmd, "description"),
			Note:        stringField(cmd, "note"),
		}
		if update.ActivityID, err = idField(cmd, "activity"); err != nil {
			return err
		}
		if update.LocationID, err = idField(cmd, "location"); err != nil {
			return err
		}
		if update.UserID, err = idField(cmd, "user"); err != nil {
			return err
		}
		if update.Date, err = timeField(cmd, "date"); err != nil {
			return err
		}
		if cmd.Flags().Changed("amount") {
			v, _ := cmd.Flags().GetString("amount")
			if v == "" || strings.EqualFold(v, nullWord) {
				update.Amount = models.Clear[int64]()
			} else {
				amount, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", v, err)
				}
				update.Amount = models.Set(amount)
			}
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			if v == "" {
				update.Category = models.Clear[models.TransactionCategory]()
			} else {
				update.Category = models.Set(models.TransactionCategory(v))
			}
		}

		if err := wire.TransactionService().UpdateTransaction(ctx, id, update); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		fmt.Printf("%s Updated transaction %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var transactionDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.TransactionService().DeleteTransaction(ctx, id); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		fmt.Printf("%s Deleted transaction %s\n", color.GreenString("✓"), id)
		return nil
	},
}

var transactionTotalCmd = &cobra.Command{
	Use:   "total [activity-id]",
	Short: "Sum the amounts booked against an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		activityID, err := parseID(args[0])
		if err != nil {
			return err
		}
		users, _ := cmd.Flags().GetStringArray("user")
		userIDs, err := parseIDs(users)
		if err != nil {
			return err
		}

		total, err := wire.TransactionService().ActivityTotal(ctx, activityID, userIDs)
		if err != nil {
			return fmt.Errorf("failed to total transactions: %w", err)
		}

		fmt.Printf("Total: %d\n", total)
		return nil
	},
}

func init() {
	transactionCreateCmd.Flags().String("activity", "", "Activity ID")
	transactionCreateCmd.Flags().String("location", "", "Location ID")
	transactionCreateCmd.Flags().String("user", "", "User ID")
	transactionCreateCmd.Flags().String("date", "", "Date (RFC3339 or YYYY-MM-DD, UTC)")
	transactionCreateCmd.Flags().Int64("amount", 0, "Amount in cents; negative for expenses")
	transactionCreateCmd.Flags().String("category", "", "Category")
	transactionCreateCmd.Flags().StringP("description", "d", "", "Description")
	transactionCreateCmd.Flags().String("note", "", "Free-form note")

	transactionListCmd.Flags().StringArray("user", nil, "Filter by user (repeatable)")
	transactionListCmd.Flags().StringArray("activity", nil, "Filter by activity (repeatable)")
	addPageFlags(transactionListCmd)

	transactionUpdateCmd.Flags().String("activity", "", "New activity ID (empty clears)")
	transactionUpdateCmd.Flags().String("location", "", "New location ID (empty clears)")
	transactionUpdateCmd.Flags().String("user", "", "New user ID (empty clears)")
	transactionUpdateCmd.Flags().String("date", "", "New date (empty clears)")
	transactionUpdateCmd.Flags().String("amount", "", "New amount (empty clears)")
	transactionUpdateCmd.Flags().String("category", "", "New category (empty clears)")
	transactionUpdateCmd.Flags().StringP("description", "d", "", "New description (empty clears)")
	transactionUpdateCmd.Flags().String("note", "", "New note (empty clears)")

	transactionTotalCmd.Flags().StringArray("user", nil, "Restrict to these users (repeatable)")

	transactionCmd.AddCommand(transactionCreateCmd)
	transactionCmd.AddCommand(transactionListCmd)
	transactionCmd.AddCommand(transactionShowCmd)
	transactionCmd.AddCommand(transactionUpdateCmd)
	transactionCmd.AddCommand(transactionDeleteCmd)
	transactionCmd.AddCommand(transactionTotalCmd)
}

// TransactionCmd returns the transaction command
func TransactionCmd() *cobra.Command {
	return transactionCmd
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgertui/ledger"
)

// entriesCmd represents the entries command.
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Account entry management commands",
	Long:  `Commands for managing account entries in the ledgerbook server.`,
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List account entries",
	Long:  `List one server page of account entries, sorted and paginated like the TUI.`,
	RunE:  entriesListRun,
}

var entriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account entry",
	RunE:  entriesCreateRun,
}

var entriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account entry",
	Args:  cobra.ExactArgs(1),
	RunE:  entriesUpdateRun,
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account entry",
	Args:  cobra.ExactArgs(1),
	RunE:  entriesDeleteRun,
}

func init() {
	entriesCmd.AddCommand(entriesListCmd)
	entriesCmd.AddCommand(entriesCreateCmd)
	entriesCmd.AddCommand(entriesUpdateCmd)
	entriesCmd.AddCommand(entriesDeleteCmd)

	entriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	entriesListCmd.Flags().Int("page", 0, "page number, starting at 0")
	entriesListCmd.Flags().Int("size", 0, "page size (default from config)")
	entriesListCmd.Flags().String("sort", "id", "sort field: id, value, name or entryDate")
	entriesListCmd.Flags().String("direction", "desc", "sort direction: asc or desc")

	addEntryFieldFlags(entriesCreateCmd)
	_ = entriesCreateCmd.MarkFlagRequired("value")
	_ = entriesCreateCmd.MarkFlagRequired("account")

	addEntryFieldFlags(entriesUpdateCmd)
}

func addEntryFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("value", "", "dollar amount, negative for debits")
	cmd.Flags().String("name", "", "what the entry is for")
	cmd.Flags().Int64("account", 0, "id of the account the entry belongs to")
	cmd.Flags().String("date", "", "entry date as YYYY-MM-DD")
}

func entriesListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")
	sortField, _ := cmd.Flags().GetString("sort")
	direction, _ := cmd.Flags().GetString("direction")

	if size <= 0 {
		size = pageSize
	}

	result, err := lgc.GetAccountEntries(cmd.Context(), &ledger.EntryFilters{
		Page:      &page,
		Size:      &size,
		Sort:      &sortField,
		Direction: &direction,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch account entries: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(result)
	case tableOutputFormat:
		return outputEntriesTable(result)
	default:
		return errors.New("unsupported output format")
	}
}

func outputEntriesTable(page *ledger.Pageable[ledger.AccountEntry]) error {
	t := createStyledTable("ID", "VALUE", "NAME", "ACCOUNT", "DATE")

	for _, entry := range page.Content {
		date := "-"
		if entry.EntryDate != nil {
			date = entry.EntryDate.Format(entryDateLayout)
		}
		t.Row(
			strconv.FormatInt(entry.ID, 10),
			displayUSD(entry.Value),
			entry.Name,
			entry.AccountName,
			date,
		)
	}

	fmt.Println(t)
	fmt.Printf("page %d of %d, %d entries total\n",
		page.Page.Number+1, page.Page.TotalPages, page.Page.TotalElements)

	return nil
}

func entriesCreateRun(cmd *cobra.Command, _ []string) error {
	entry, err := entryFromFlags(cmd, 0)
	if err != nil {
		return err
	}

	created, err := lgc.CreateAccountEntry(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("failed to create account entry: %w", err)
	}

	fmt.Printf("Created entry %q with id %d\n", created.Name, created.ID)
	return nil
}

func entriesUpdateRun(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	entry, err := entryFromFlags(cmd, id)
	if err != nil {
		return err
	}

	updated, err := lgc.UpdateAccountEntry(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("failed to update account entry: %w", err)
	}

	fmt.Printf("Updated entry %d\n", updated.ID)
	return nil
}

func entriesDeleteRun(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	if err := lgc.DeleteAccountEntry(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete account entry: %w", err)
	}

	fmt.Printf("Deleted entry %d\n", id)
	return nil
}

func entryFromFlags(cmd *cobra.Command, id int64) (*ledger.AccountEntry, error) {
	valueStr, _ := cmd.Flags().GetString("value")
	name, _ := cmd.Flags().GetString("name")
	accountID, _ := cmd.Flags().GetInt64("account")
	dateStr, _ := cmd.Flags().GetString("date")

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", valueStr, err)
	}

	var entryDate *time.Time
	if dateStr != "" {
		t, err := time.Parse(entryDateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		entryDate = &t
	}

	return &ledger.AccountEntry{
		ID:        id,
		Value:     value,
		Name:      name,
		EntryDate: entryDate,
		AccountID: accountID,
	}, nil
}

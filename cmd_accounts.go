package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgertui/ledger"
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account management commands",
	Long:  `Commands for managing accounts in the ledgerbook server.`,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Long:  `List all accounts with their IDs and details.`,
	RunE:  accountsListRun,
}

var accountsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	RunE:  accountsCreateRun,
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  accountsDeleteRun,
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsCreateCmd)
	accountsCmd.AddCommand(accountsDeleteCmd)

	accountsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	accountsCreateCmd.Flags().String("name", "", "display name of the account")
	accountsCreateCmd.Flags().String("account-id", "", "external identifier of the account")
	accountsCreateCmd.Flags().String("type", "checking", "account type")
	_ = accountsCreateCmd.MarkFlagRequired("name")
}

func accountsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	page, err := lgc.GetAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accounts := page.Content
	// Sort accounts by name for consistent output
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountName < accounts[j].AccountName
	})

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(accounts)
	case tableOutputFormat:
		return outputAccountsTable(accounts)
	default:
		return errors.New("unsupported output format")
	}
}

func outputAccountsTable(accounts []ledger.Account) error {
	t := createStyledTable("ID", "NAME", "ACCOUNT ID", "TYPE")

	for _, account := range accounts {
		accountID := account.AccountID
		if accountID == "" {
			accountID = "-"
		}
		t.Row(
			strconv.FormatInt(account.ID, 10),
			account.AccountName,
			accountID,
			titleCaser.String(account.AccountType),
		)
	}

	fmt.Println(t)

	return nil
}

func accountsCreateRun(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	accountID, _ := cmd.Flags().GetString("account-id")
	accountType, _ := cmd.Flags().GetString("type")

	created, err := lgc.CreateAccount(cmd.Context(), &ledger.Account{
		AccountName: name,
		AccountID:   accountID,
		AccountType: accountType,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Printf("Created account %q with id %d\n", created.AccountName, created.ID)
	return nil
}

func accountsDeleteRun(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q: %w", args[0], err)
	}

	if err := lgc.DeleteAccount(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	fmt.Printf("Deleted account %d\n", id)
	return nil
}

package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// AccountEntry is a single bookkeeping entry against an account.
// AccountName is denormalized by the server for display.
type AccountEntry struct {
	ID          int64           `json:"id"`
	Value       decimal.Decimal `json:"value"`
	Name        string          `json:"name"`
	EntryDate   *time.Time      `json:"entryDate,omitempty"`
	AccountID   int64           `json:"accountId"`
	AccountName string          `json:"accountName"`
}

// entryBody is the write shape for entries. The owning account rides in the
// URL, so only the entry fields are transmitted.
type entryBody struct {
	Value     decimal.Decimal `json:"value"`
	Name      string          `json:"name"`
	EntryDate *time.Time      `json:"entryDate,omitempty"`
}

// GetAccountEntries returns one page of entries, paged and sorted per filters.
func (c *Client) GetAccountEntries(ctx context.Context, filters *EntryFilters) (*Pageable[AccountEntry], error) {
	page := new(Pageable[AccountEntry])
	if err := c.get(ctx, "/api/account-entries", filters.ToMap(), page); err != nil {
		return nil, fmt.Errorf("listing account entries: %w", err)
	}

	return page, nil
}

// CreateAccountEntry submits a new entry under entry.AccountID and returns
// the server-assigned canonical representation.
func (c *Client) CreateAccountEntry(ctx context.Context, entry *AccountEntry) (*AccountEntry, error) {
	body := entryBody{
		Value:     entry.Value,
		Name:      entry.Name,
		EntryDate: entry.EntryDate,
	}

	path := fmt.Sprintf("/api/accounts/%d/account-entries", entry.AccountID)
	created := new(AccountEntry)
	if err := c.do(ctx, http.MethodPost, path, nil, body, created); err != nil {
		return nil, fmt.Errorf("creating account entry: %w", err)
	}

	return created, nil
}

// UpdateAccountEntry replaces the entry addressed by its persisted ID.
func (c *Client) UpdateAccountEntry(ctx context.Context, entry *AccountEntry) (*AccountEntry, error) {
	body := entryBody{
		Value:     entry.Value,
		Name:      entry.Name,
		EntryDate: entry.EntryDate,
	}

	path := fmt.Sprintf("/api/accounts/%d/account-entries/%d", entry.AccountID, entry.ID)
	updated := new(AccountEntry)
	if err := c.do(ctx, http.MethodPut, path, nil, body, updated); err != nil {
		return nil, fmt.Errorf("updating account entry %d: %w", entry.ID, err)
	}

	return updated, nil
}

// DeleteAccountEntry removes the entry with the given ID.
func (c *Client) DeleteAccountEntry(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/account-entries/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting account entry %d: %w", id, err)
	}

	return nil
}

package ledger

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// Account is an account in the chart of accounts. AccountID is the
// user-assigned business identifier, distinct from the server-assigned ID.
type Account struct {
	ID          int64  `json:"id"`
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
}

// accountBody is the write shape for accounts. The server assigns ID, so it
// is never transmitted.
type accountBody struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
}

// GetAccounts returns the entire account collection as a single page.
func (c *Client) GetAccounts(ctx context.Context) (*Pageable[Account], error) {
	q := url.Values{}
	q.Set("size", strconv.Itoa(math.MaxInt32))

	page := new(Pageable[Account])
	if err := c.get(ctx, "/api/accounts", q, page); err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return page, nil
}

// CreateAccount submits a new account and returns the server-assigned
// canonical representation.
func (c *Client) CreateAccount(ctx context.Context, account *Account) (*Account, error) {
	body := accountBody{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		AccountType: account.AccountType,
	}

	created := new(Account)
	if err := c.do(ctx, http.MethodPost, "/api/accounts", nil, body, created); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return created, nil
}

// UpdateAccount replaces the account addressed by its persisted ID.
func (c *Client) UpdateAccount(ctx context.Context, account *Account) (*Account, error) {
	body := accountBody{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		AccountType: account.AccountType,
	}

	path := fmt.Sprintf("/api/accounts/%d", account.ID)
	updated := new(Account)
	if err := c.do(ctx, http.MethodPut, path, nil, body, updated); err != nil {
		return nil, fmt.Errorf("updating account %d: %w", account.ID, err)
	}

	return updated, nil
}

// DeleteAccount removes the account with the given ID.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/accounts/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting account %d: %w", id, err)
	}

	return nil
}

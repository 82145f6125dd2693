package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

func TestEntryFiltersToMap(t *testing.T) {
	tests := []struct {
		name     string
		filters  *EntryFilters
		expected map[string]string
	}{
		{
			name:     "nil filters",
			filters:  nil,
			expected: map[string]string{},
		},
		{
			name:     "empty filters",
			filters:  &EntryFilters{},
			expected: map[string]string{},
		},
		{
			name: "page and size only",
			filters: &EntryFilters{
				Page: ptr(2),
				Size: ptr(50),
			},
			expected: map[string]string{"page": "2", "size": "50"},
		},
		{
			name: "lowercase direction is normalized",
			filters: &EntryFilters{
				Sort:      ptr("value"),
				Direction: ptr("asc"),
			},
			expected: map[string]string{"sort": "value,ASC"},
		},
		{
			name: "uppercase direction passes through",
			filters: &EntryFilters{
				Sort:      ptr("id"),
				Direction: ptr("DESC"),
			},
			expected: map[string]string{"sort": "id,DESC"},
		},
		{
			name: "sort without direction defaults to ASC",
			filters: &EntryFilters{
				Sort: ptr("entryDate"),
			},
			expected: map[string]string{"sort": "entryDate,ASC"},
		},
		{
			name: "direction without sort field is dropped",
			filters: &EntryFilters{
				Direction: ptr("desc"),
			},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.filters.ToMap()
			be.Equal(t, len(tt.expected), len(q))
			for k, v := range tt.expected {
				be.Equal(t, v, q.Get(k))
			}
		})
	}
}

func TestGetAccountEntries(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/api/account-entries", r.URL.Path)
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [
				{"id": 7, "value": 12.50, "name": "Coffee", "accountId": 3, "accountName": "Cash"}
			],
			"page": {"size": 50, "totalElements": 1, "totalPages": 1, "number": 0}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	page, err := client.GetAccountEntries(context.Background(), &EntryFilters{
		Page:      ptr(0),
		Size:      ptr(50),
		Sort:      ptr("value"),
		Direction: ptr("asc"),
	})
	be.NilErr(t, err)

	be.In(t, "sort=value%2CASC", gotQuery)
	be.Equal(t, 1, len(page.Content))
	be.Equal(t, int64(7), page.Content[0].ID)
	be.Equal(t, "Coffee", page.Content[0].Name)
	be.True(t, page.Content[0].Value.Equal(decimal.RequireFromString("12.5")))
	be.Equal(t, 50, page.Page.Size)
	be.True(t, len(page.Content) <= page.Page.Size)
}

func TestCreateAccountOmitsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/api/accounts", r.URL.Path)

		var body map[string]any
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasID := body["id"]
		be.False(t, hasID)
		be.Equal(t, "ACC-1", body["accountId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "accountId": "ACC-1", "accountName": "Cash", "accountType": "asset"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	created, err := client.CreateAccount(context.Background(), &Account{
		AccountID:   "ACC-1",
		AccountName: "Cash",
		AccountType: "asset",
	})
	be.NilErr(t, err)
	be.Equal(t, int64(42), created.ID)
}

func TestCreateAccountEntryPathAndBody(t *testing.T) {
	entryDate := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/api/accounts/3/account-entries", r.URL.Path)

		var body map[string]any
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasID := body["id"]
		be.False(t, hasID)
		_, hasAccountID := body["accountId"]
		be.False(t, hasAccountID)
		be.Equal(t, "Office chair", body["name"])

		_, _ = w.Write([]byte(`{"id": 9, "value": 199.99, "name": "Office chair", "accountId": 3, "accountName": "Equipment"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	created, err := client.CreateAccountEntry(context.Background(), &AccountEntry{
		Value:     decimal.RequireFromString("199.99"),
		Name:      "Office chair",
		EntryDate: &entryDate,
		AccountID: 3,
	})
	be.NilErr(t, err)
	be.Equal(t, int64(9), created.ID)
	be.Equal(t, "Equipment", created.AccountName)
}

func TestUpdateAccountEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPut, r.Method)
		be.Equal(t, "/api/accounts/3/account-entries/9", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 9, "value": 150, "name": "Desk", "accountId": 3, "accountName": "Equipment"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	updated, err := client.UpdateAccountEntry(context.Background(), &AccountEntry{
		ID:        9,
		Value:     decimal.NewFromInt(150),
		Name:      "Desk",
		AccountID: 3,
	})
	be.NilErr(t, err)
	be.Equal(t, "Desk", updated.Name)
}

func TestDeleteAccountEntryNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodDelete, r.Method)
		be.Equal(t, "/api/account-entries/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	be.NilErr(t, client.DeleteAccountEntry(context.Background(), 9))
}

func TestGetAccountsRequestsWholeCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/api/accounts", r.URL.Path)
		be.Equal(t, "2147483647", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(`{
			"content": [{"id": 1, "accountId": "ACC-1", "accountName": "Cash", "accountType": "asset"}],
			"page": {"size": 2147483647, "totalElements": 1, "totalPages": 1, "number": 0}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	page, err := client.GetAccounts(context.Background())
	be.NilErr(t, err)
	be.Equal(t, 1, len(page.Content))
	be.Equal(t, "Cash", page.Content[0].AccountName)
}

func TestValidationErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"fields": {"name": "required"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	_, err = client.CreateAccount(context.Background(), &Account{})
	be.Nonzero(t, err)

	var ve *ValidationError
	be.True(t, errors.As(err, &ve))
	be.Equal(t, "required", ve.Fields["name"])
	be.In(t, "name", ve.Error())
	be.In(t, "required", ve.Error())
}

func TestRequestErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	be.NilErr(t, err)

	err = client.DeleteAccount(context.Background(), 1)
	be.Nonzero(t, err)

	var re *RequestError
	be.True(t, errors.As(err, &re))
	be.Equal(t, http.StatusInternalServerError, re.StatusCode)

	var ve *ValidationError
	be.False(t, errors.As(err, &ve))
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("")
	be.Nonzero(t, err)
}

package ledger

import (
	"net/url"
	"strconv"
	"strings"
)

// PageMeta is the page metadata the server returns alongside every page.
type PageMeta struct {
	// Size is the requested page size; len(Content) is at most Size.
	Size int `json:"size"`
	// TotalElements is the element count across all pages.
	TotalElements int `json:"totalElements"`
	// TotalPages is the page count at the current size.
	TotalPages int `json:"totalPages"`
	// Number is the zero-based index of this page.
	Number int `json:"number"`
}

// Pageable is one page of entities.
type Pageable[T any] struct {
	Content []T      `json:"content"`
	Page    PageMeta `json:"page"`
}

// EntryFilters are the optional paging and sorting parameters for listing
// account entries. Nil fields are omitted and the server applies defaults.
type EntryFilters struct {
	Page      *int
	Size      *int
	Sort      *string
	Direction *string
}

// ToMap converts the filters into query parameters. The sort parameter is
// encoded as "<field>,<ASC|DESC>"; the direction is case-normalized and
// defaults to ASC when a sort field is set without one.
func (f *EntryFilters) ToMap() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}

	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Size != nil {
		q.Set("size", strconv.Itoa(*f.Size))
	}
	if f.Sort != nil && *f.Sort != "" {
		dir := "ASC"
		if f.Direction != nil && *f.Direction != "" {
			dir = strings.ToUpper(*f.Direction)
		}
		q.Set("sort", *f.Sort+","+dir)
	}

	return q
}

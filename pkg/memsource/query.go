package memsource

import (
	"net/url"
	"sort"
	"strconv"
)

// ListOptions represents optional query parameters for list operations.
//
// The API pages its listings itself; the client only forwards the requested
// page and never walks pages on its own.
type ListOptions struct {
	PageNumber int
	PageSize   int
	Filters    map[string]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string]string),
	}
}

// WithPage sets the zero-based page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.PageNumber = page

	return o
}

// WithPageSize sets the page size.
func (o *ListOptions) WithPageSize(size int) *ListOptions {
	o.PageSize = size

	return o
}

// WithFilter adds a filter parameter such as "name".
func (o *ListOptions) WithFilter(key, value string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string]string)
	}

	o.Filters[key] = value

	return o
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(o.PageNumber))
	}

	if o.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(o.PageSize))
	}

	keys := make([]string, 0, len(o.Filters))
	for key := range o.Filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		values.Set(key, o.Filters[key])
	}

	return values
}

package client

import (
	"net/url"
	"strconv"
	"strings"
)

// Filters is the filter selection of a listing, as carried in URL parameters.
type Filters struct {
	Query              string
	Categories         []string
	States             []string
	Locations          []string
	Authorities        []string
	TenderTypes        []string
	Values             []string
	MinPrice           *int64
	MaxPrice           *int64
	PublishDateFrom    string
	PublishDateTo      string
	SubmissionDateFrom string
	SubmissionDateTo   string
}

// ListingRequest addresses one page of a listing.
type ListingRequest struct {
	Type    string
	Sort    string
	Filters Filters
	Page    int
}

// WithFilters replaces the filter selection and goes back to the first page.
func (r ListingRequest) WithFilters(f Filters) ListingRequest {
	r.Filters = f
	r.Page = 1
	return r
}

// WithSort changes the ordering and goes back to the first page.
func (r ListingRequest) WithSort(sort string) ListingRequest {
	r.Sort = sort
	r.Page = 1
	return r
}

// WithPage moves to another page of the same selection.
func (r ListingRequest) WithPage(page int) ListingRequest {
	r.Page = page
	return r
}

// Encode renders the request as listing query parameters. Lists are comma separated and empty
// values are omitted.
func (r ListingRequest) Encode() url.Values {
	v := url.Values{}
	f := r.Filters

	setString(v, "q", strings.TrimSpace(f.Query))
	setList(v, "category", f.Categories)
	setList(v, "state", f.States)
	setList(v, "location", f.Locations)
	setList(v, "authority", f.Authorities)
	setList(v, "tender_type", f.TenderTypes)
	setList(v, "value", f.Values)
	if f.MinPrice != nil {
		v.Set("minPrice", strconv.FormatInt(*f.MinPrice, 10))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatInt(*f.MaxPrice, 10))
	}
	setString(v, "publishDateFrom", f.PublishDateFrom)
	setString(v, "publishDateTo", f.PublishDateTo)
	setString(v, "submissionDateFrom", f.SubmissionDateFrom)
	setString(v, "submissionDateTo", f.SubmissionDateTo)
	setString(v, "sort", r.Sort)
	setString(v, "type", r.Type)
	if r.Page > 1 {
		v.Set("page", strconv.Itoa(r.Page))
	}
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setList(v url.Values, key string, values []string) {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			kept = append(kept, value)
		}
	}
	if len(kept) > 0 {
		v.Set(key, strings.Join(kept, ","))
	}
}

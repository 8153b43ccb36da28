package models

import (
	"math"
	"time"
)

// ListingPageSize is the fixed number of tenders per listing page.
const ListingPageSize = 20

// MaxPage is the largest page whose row offset fits in an int.
const MaxPage = math.MaxInt / ListingPageSize

// ListingType selects the base temporal predicate of a listing.
type ListingType string

const (
	ListingDefault     ListingType = "default"
	ListingArchive     ListingType = "archive"
	ListingLatest      ListingType = "latest"
	ListingClosingSoon ListingType = "closing-soon"
)

// Valid reports whether the listing type is known.
func (l ListingType) Valid() bool {
	switch l {
	case ListingDefault, ListingArchive, ListingLatest, ListingClosingSoon:
		return true
	}
	return false
}

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortClosing   SortKey = "closing"
	SortValueHigh SortKey = "value_high"
)

// Valid reports whether the sort key is known.
func (s SortKey) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortClosing, SortValueHigh:
		return true
	}
	return false
}

// TenderFilter is the filter selection of a listing request. Empty lists and nil bounds do not
// constrain the result. Date bounds are calendar days in IST; the upper bounds are inclusive.
type TenderFilter struct {
	Type  ListingType
	Sort  SortKey
	Query string

	Categories  []string
	States      []string
	Locations   []string
	Authorities []string
	TenderTypes []string
	Values      []string

	MinPrice *int64
	MaxPrice *int64

	PublishedFrom *time.Time
	PublishedTo   *time.Time
	ClosingFrom   *time.Time
	ClosingTo     *time.Time

	Page int
}

// Offset returns the row offset of the requested page and whether the page can hold rows.
func (f TenderFilter) Offset() (int, bool) {
	return PageOffset(f.Page)
}

// PageOffset returns the row offset of page. Pages below 1 or above MaxPage hold no rows.
func PageOffset(page int) (int, bool) {
	if page < 1 || page > MaxPage {
		return 0, false
	}
	return (page - 1) * ListingPageSize, true
}

// TotalPages computes ceil(total / ListingPageSize).
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + ListingPageSize - 1) / ListingPageSize
}

// Facet is one distinct value of a tender column with its number of open tenders.
type Facet struct {
	Value string `db:"value"`
	Count int    `db:"count"`
}

// FacetColumn names a tender column that can be faceted.
type FacetColumn string

const (
	FacetCategory   FacetColumn = "tender_category"
	FacetState      FacetColumn = "state"
	FacetAuthority  FacetColumn = "authority"
	FacetTenderType FacetColumn = "tender_type"
)

// IST is the zone calendar-day filters and display strings are expressed in.
var IST = time.FixedZone("IST", 5*60*60+30*60)

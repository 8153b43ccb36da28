package dto

// FacetCount is one distinct value of a filter group with the number of active tenders carrying it.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FilterOptions feeds the listing sidebar and the directory pages.
type FilterOptions struct {
	Categories  []FacetCount `json:"categories"`
	States      []FacetCount `json:"states"`
	Authorities []FacetCount `json:"authorities"`
	TenderTypes []FacetCount `json:"tenderTypes"`
	PriceRange  PriceRange   `json:"priceRange"`
}

// PriceRange bounds the slider.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// PriceRangeQuery carries either slider positions or currency bounds.
type PriceRangeQuery struct {
	MinPos   *int
	MaxPos   *int
	MinPrice *int64
	MaxPrice *int64
	Legacy   bool
}

// PriceRangeResponse returns both representations of the selected range.
type PriceRangeResponse struct {
	MinPos   int   `json:"minPos"`
	MaxPos   int   `json:"maxPos"`
	MinPrice int64 `json:"minPrice"`
	MaxPrice int64 `json:"maxPrice"`
	MaxValue int64 `json:"maxValue"`
}

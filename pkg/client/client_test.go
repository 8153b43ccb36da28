package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestEncodeListingRequest(t *testing.T) {
	req := ListingRequest{
		Type: "closing-soon",
		Sort: "value_high",
		Page: 3,
		Filters: Filters{
			Query:           "  bridge ",
			Categories:      []string{"Construction", " ", "IT & Software"},
			States:          []string{"Delhi"},
			MinPrice:        int64Ptr(100000000),
			PublishDateFrom: "2024-01-01",
		},
	}

	v := req.Encode()
	assert.Equal(t, "bridge", v.Get("q"))
	assert.Equal(t, "Construction,IT & Software", v.Get("category"))
	assert.Equal(t, "Delhi", v.Get("state"))
	assert.Equal(t, "100000000", v.Get("minPrice"))
	assert.Equal(t, "2024-01-01", v.Get("publishDateFrom"))
	assert.Equal(t, "value_high", v.Get("sort"))
	assert.Equal(t, "closing-soon", v.Get("type"))
	assert.Equal(t, "3", v.Get("page"))
	assert.False(t, v.Has("maxPrice"))
	assert.False(t, v.Has("location"))
}

func TestFilterChangeResetsPage(t *testing.T) {
	req := ListingRequest{Page: 4}

	assert.Equal(t, 1, req.WithFilters(Filters{States: []string{"Goa"}}).Page)
	assert.Equal(t, 1, req.WithSort("oldest").Page)
	assert.Equal(t, 5, req.WithPage(5).Page)
	assert.False(t, req.WithFilters(Filters{}).Encode().Has("page"))
}

func TestTendersDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tenders", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("state"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":"t1","title":"Road works"}],"totalCount":21,"page":1,"pageSize":20,"totalPages":2}}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1/")
	res, err := c.Tenders(context.Background(), ListingRequest{Filters: Filters{States: []string{"Delhi"}}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Road works", res.Items[0].Title)
	assert.Equal(t, 21, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
}

func TestTendersSurfacesListingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"data":{"items":[],"totalCount":0,"page":1,"pageSize":20,"totalPages":0,"error":"tenders could not be loaded"},"error":{"code":"LISTING_UNAVAILABLE","message":"tenders could not be loaded","status":503}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Tenders(context.Background(), ListingRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "LISTING_UNAVAILABLE", apiErr.Code)
	assert.Empty(t, res.Items)
	assert.Equal(t, "tenders could not be loaded", res.Error)
}

func TestPriceRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "333", r.URL.Query().Get("minPos"))
		_, _ = w.Write([]byte(`{"data":{"minPos":333,"maxPos":1000,"minPrice":100000000,"maxPrice":10000000000,"maxValue":10000000000}}`))
	}))
	defer srv.Close()

	out, err := New(srv.URL).PriceRange(context.Background(), 333, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(100000000), out.MinPrice)
}

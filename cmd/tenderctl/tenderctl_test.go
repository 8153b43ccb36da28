package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/browse"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/client"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSliderPositionsToAmounts(t *testing.T) {
	out, err := execute(t, "slider", "--min-pos", "0", "--max-pos", "1000", "--max-value", "10000000000")
	require.NoError(t, err)

	assert.Contains(t, out, "positions 0..1000")
	assert.Contains(t, out, "(0..10000000000)")
}

func TestSliderAmountsToPositions(t *testing.T) {
	out, err := execute(t, "slider", "--min-price", "0", "--max-price", "10000000000", "--max-value", "10000000000")
	require.NoError(t, err)

	assert.Contains(t, out, "positions 0..1000")
}

func listingServer(t *testing.T, seen chan<- string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen <- r.URL.Query().Get("q")
		}
		page := dto.ListingResult{
			Items: []dto.TenderCard{{
				ReferenceNo:      "PWD/2024/17",
				Title:            "Road resurfacing " + r.URL.Query().Get("q"),
				State:            "Maharashtra",
				TenderValue:      "₹25.00 Cr",
				BidSubmissionEnd: "15 Mar 2024, 05:00 PM",
			}},
			TotalCount: 1, Page: 1, PageSize: 20, TotalPages: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": page})
	}))
}

func TestSearchPrintsListing(t *testing.T) {
	srv := listingServer(t, nil)
	defer srv.Close()

	out, err := execute(t, "search", "--api", srv.URL, "--state", "Maharashtra", "road")
	require.NoError(t, err)

	assert.Contains(t, out, "PWD/2024/17")
	assert.Contains(t, out, "Road resurfacing road")
	assert.Contains(t, out, "page 1 of 1, 1 tenders")
}

func TestBrowseInteractivePrintsFinalQuery(t *testing.T) {
	srv := listingServer(t, nil)
	defer srv.Close()

	api := client.New(srv.URL)
	ctx := context.Background()
	session := browse.New(ctx, func(ctx context.Context, q client.ListingRequest) (*dto.ListingResult, error) {
		return api.Tenders(ctx, q)
	})
	defer session.Close()

	var out bytes.Buffer
	err := browseInteractive(ctx, session, client.ListingRequest{}, strings.NewReader("bri\nbridge\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), `-- "bridge"`)
	assert.Contains(t, out.String(), "Road resurfacing bridge")
}

func TestBrowseInteractiveStopsReaderOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := browse.New(context.Background(), func(ctx context.Context, q client.ListingRequest) (*dto.ListingResult, error) {
		return &dto.ListingResult{Items: []dto.TenderCard{}}, nil
	})

	input := strings.Repeat("road\n", 1000)
	var out bytes.Buffer
	_ = browseInteractive(ctx, session, client.ListingRequest{}, strings.NewReader(input), &out)
	session.Close()
}

func TestPrintListingEmptyStates(t *testing.T) {
	var out bytes.Buffer
	printListing(&out, &dto.ListingResult{Items: []dto.TenderCard{}})
	assert.Equal(t, "No tenders found\n", out.String())

	out.Reset()
	printListing(&out, &dto.ListingResult{Items: []dto.TenderCard{}, Error: "Failed to load tenders"})
	assert.Equal(t, "Failed to load tenders\n", out.String())
}

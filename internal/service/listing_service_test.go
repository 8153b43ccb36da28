package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersaarthi/tendersaarthi-api/internal/catalog"
	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
)

type fakeListingRepo struct {
	mu          sync.Mutex
	tenders     []models.Tender
	listErr     error
	maxValue    int64
	maxErr      error
	maxCalls    atomic.Int32
	maxDelay    time.Duration
	facetErr    error
	lastFilter  models.TenderFilter
	lastNow     time.Time
	facetsByCol map[models.FacetColumn][]models.Facet
}

func (f *fakeListingRepo) List(ctx context.Context, filter models.TenderFilter, now time.Time) ([]models.Tender, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	f.lastNow = now
	if f.listErr != nil {
		return nil, 0, f.listErr
	}

	var matched []models.Tender
	for _, t := range f.tenders {
		if MatchesFilter(filter, t, now) {
			matched = append(matched, t)
		}
	}
	offset, ok := filter.Offset()
	if !ok || offset >= len(matched) {
		return []models.Tender{}, len(matched), nil
	}
	end := offset + models.ListingPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], len(matched), nil
}

func (f *fakeListingRepo) MaxValue(ctx context.Context) (int64, error) {
	f.maxCalls.Add(1)
	if f.maxDelay > 0 {
		time.Sleep(f.maxDelay)
	}
	return f.maxValue, f.maxErr
}

func (f *fakeListingRepo) Facets(ctx context.Context, column models.FacetColumn, now time.Time) ([]models.Facet, error) {
	if f.facetErr != nil {
		return nil, f.facetErr
	}
	return f.facetsByCol[column], nil
}

func newTestListingService(repo *fakeListingRepo) *ListingService {
	svc := NewListingService(repo, nil, nil, catalog.MustDefault(), nil, ListingConfig{DefaultMaxValue: 10_000_000_000})
	svc.now = func() time.Time { return matchNow }
	return svc
}

func manyTenders(n int) []models.Tender {
	out := make([]models.Tender, n)
	for i := range out {
		out[i] = openTender(func(t *models.Tender) {
			t.ID = string(rune('a'+i%26)) + string(rune('a'+i/26))
		})
	}
	return out
}

func TestListingServiceListPaginates(t *testing.T) {
	repo := &fakeListingRepo{tenders: manyTenders(45)}
	svc := newTestListingService(repo)

	seen := map[string]bool{}
	var totalPages int
	for page := 1; ; page++ {
		res, hit, err := svc.List(context.Background(), models.TenderFilter{Page: page})
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, 45, res.TotalCount)
		assert.Equal(t, models.ListingPageSize, res.PageSize)
		totalPages = res.TotalPages
		for _, card := range res.Items {
			assert.False(t, seen[card.ID], "duplicate %s", card.ID)
			seen[card.ID] = true
		}
		if page >= res.TotalPages {
			break
		}
	}
	assert.Equal(t, 3, totalPages)
	assert.Len(t, seen, 45)
}

func TestListingServiceOutOfRangePages(t *testing.T) {
	repo := &fakeListingRepo{tenders: manyTenders(5)}
	svc := newTestListingService(repo)

	for _, page := range []int{0, -3, 2, 99} {
		res, _, err := svc.List(context.Background(), models.TenderFilter{Page: page})
		require.NoError(t, err)
		assert.Empty(t, res.Items, "page %d", page)
		assert.NotNil(t, res.Items)
		assert.Equal(t, 5, res.TotalCount)
		assert.Equal(t, 1, res.TotalPages)
	}
}

func TestListingServiceDefaults(t *testing.T) {
	repo := &fakeListingRepo{}
	svc := newTestListingService(repo)

	_, _, err := svc.List(context.Background(), models.TenderFilter{Type: "bogus", Sort: "bogus", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, models.ListingDefault, repo.lastFilter.Type)
	assert.Equal(t, models.SortNewest, repo.lastFilter.Sort)
	assert.Equal(t, matchNow, repo.lastNow)

	_, _, err = svc.List(context.Background(), models.TenderFilter{Type: models.ListingClosingSoon, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, models.SortClosing, repo.lastFilter.Sort)

	_, _, err = svc.List(context.Background(), models.TenderFilter{Type: models.ListingClosingSoon, Sort: models.SortValueHigh, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, models.SortValueHigh, repo.lastFilter.Sort)
}

func TestListingServiceEmptyIsSuccess(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{})

	res, _, err := svc.List(context.Background(), models.TenderFilter{Categories: []string{"Defence"}, Page: 1})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.TotalCount)
	assert.Zero(t, res.TotalPages)
	assert.Empty(t, res.Error)
}

func TestListingServiceFailureIsVisible(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{listErr: errors.New("dial tcp: connection refused")})

	res, _, err := svc.List(context.Background(), models.TenderFilter{Page: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrListingUnavailable.Code, appErr.Code)
	require.NotNil(t, res)
	assert.Empty(t, res.Items)
	assert.Equal(t, appErrors.ErrListingUnavailable.Message, res.Error)
}

func TestListingServiceIsIdempotent(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{tenders: manyTenders(30)})
	filter := models.TenderFilter{States: []string{"Delhi"}, Page: 2}

	first, _, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	second, _, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListingServiceMaxValueFallback(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{})
	assert.Equal(t, int64(10_000_000_000), svc.MaxValue(context.Background()))

	svc = newTestListingService(&fakeListingRepo{maxErr: errors.New("boom")})
	assert.Equal(t, int64(10_000_000_000), svc.MaxValue(context.Background()))

	svc = newTestListingService(&fakeListingRepo{maxValue: 42_000_000_000})
	assert.Equal(t, int64(42_000_000_000), svc.MaxValue(context.Background()))
}

func TestListingServiceMaxValueSharesInflightQuery(t *testing.T) {
	repo := &fakeListingRepo{maxValue: 12_000_000_000, maxDelay: 50 * time.Millisecond}
	svc := newTestListingService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, int64(12_000_000_000), svc.MaxValue(context.Background()))
		}()
	}
	wg.Wait()
	assert.Less(t, repo.maxCalls.Load(), int32(8))
}

func TestListingServiceFilterOptions(t *testing.T) {
	repo := &fakeListingRepo{
		maxValue: 20_000_000_000,
		facetsByCol: map[models.FacetColumn][]models.Facet{
			models.FacetCategory:  {{Value: "Construction", Count: 7}},
			models.FacetAuthority: {{Value: "NHAI", Count: 3}},
		},
	}
	svc := newTestListingService(repo)

	opts, hit, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.NotEmpty(t, opts.Categories)
	assert.Equal(t, dto.FacetCount{Value: "Construction", Count: 7}, opts.Categories[0])
	assert.Len(t, opts.Categories, len(catalog.MustDefault().Categories))
	assert.Len(t, opts.States, 36)
	assert.Equal(t, []dto.FacetCount{{Value: "NHAI", Count: 3}}, opts.Authorities)
	assert.Equal(t, dto.PriceRange{Min: 0, Max: 20_000_000_000}, opts.PriceRange)
}

func TestListingServiceFilterOptionsFailure(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{facetErr: errors.New("timeout")})

	_, _, err := svc.FilterOptions(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrListingUnavailable.Code, appErrors.FromError(err).Code)
}

func intPtr(v int) *int { return &v }

func TestListingServicePriceRange(t *testing.T) {
	svc := newTestListingService(&fakeListingRepo{maxValue: 10_000_000_000})
	ctx := context.Background()

	full := svc.PriceRange(ctx, dto.PriceRangeQuery{})
	assert.Equal(t, dto.PriceRangeResponse{MinPos: 0, MaxPos: 1000, MinPrice: 0, MaxPrice: 10_000_000_000, MaxValue: 10_000_000_000}, *full)

	moved := svc.PriceRange(ctx, dto.PriceRangeQuery{MinPos: intPtr(333)})
	assert.Equal(t, int64(100_000_000), moved.MinPrice)

	crossed := svc.PriceRange(ctx, dto.PriceRangeQuery{MinPos: intPtr(700), MaxPos: intPtr(500)})
	assert.Equal(t, 499, crossed.MinPos)
	assert.Equal(t, 500, crossed.MaxPos)

	restored := svc.PriceRange(ctx, dto.PriceRangeQuery{MinPrice: ptrInt64(100_000_000), MaxPrice: ptrInt64(5_000_000_000)})
	assert.Equal(t, 333, restored.MinPos)
	assert.Equal(t, 666, restored.MaxPos)

	legacy := svc.PriceRange(ctx, dto.PriceRangeQuery{MinPrice: ptrInt64(100_000_000), MaxPrice: ptrInt64(5_000_000_000), Legacy: true})
	assert.Equal(t, 10, legacy.MinPos)
	assert.Equal(t, 500, legacy.MaxPos)
}

func TestListingCacheKeyIsStable(t *testing.T) {
	a := listingCacheKey(models.TenderFilter{States: []string{"Goa"}, Page: 1})
	b := listingCacheKey(models.TenderFilter{States: []string{"Goa"}, Page: 1})
	c := listingCacheKey(models.TenderFilter{States: []string{"Goa"}, Page: 2})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "tenders:list:")
}

func TestListingServiceCacheExpiresWhenTenderCloses(t *testing.T) {
	cacheRepo := newMemoryCache()
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	closing := openTender(func(t *models.Tender) {
		t.ID = "closing"
		t.BidEndTS = ptrTime(matchNow.Add(10 * time.Second))
	})
	repo := &fakeListingRepo{tenders: []models.Tender{closing, openTender(nil)}}
	svc := NewListingService(repo, cache, nil, catalog.MustDefault(), nil, ListingConfig{CacheTTL: 30 * time.Second})
	svc.now = func() time.Time { return matchNow }

	filter := models.TenderFilter{Type: models.ListingClosingSoon, Page: 1}
	_, hit, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.False(t, hit)

	key := listingCacheKey(NormalizeFilter(filter))
	assert.Equal(t, 10*time.Second, cacheRepo.ttls[key])

	_, hit, err = svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestListingCacheTTL(t *testing.T) {
	base := 30 * time.Second
	open := openTender(nil)
	soon := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(5 * time.Second)) })
	closed := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(-time.Hour)) })
	noDeadline := openTender(func(t *models.Tender) { t.BidEndTS = nil })

	assert.Equal(t, base, listingCacheTTL(nil, matchNow, base))
	assert.Equal(t, base, listingCacheTTL([]models.Tender{open, closed, noDeadline}, matchNow, base))
	assert.Equal(t, 5*time.Second, listingCacheTTL([]models.Tender{open, soon}, matchNow, base))
}

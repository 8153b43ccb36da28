package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tendersaarthi/tendersaarthi-api/internal/catalog"
	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/pricerange"
)

const (
	listingCachePrefix  = "tenders:"
	listingCachePattern = listingCachePrefix + "*"
	filterOptionsKey    = listingCachePrefix + "filters"
	maxValueKey         = listingCachePrefix + "max_value"
)

type tenderListingRepository interface {
	List(ctx context.Context, filter models.TenderFilter, now time.Time) ([]models.Tender, int, error)
	MaxValue(ctx context.Context) (int64, error)
	Facets(ctx context.Context, column models.FacetColumn, now time.Time) ([]models.Facet, error)
}

// ListingConfig tunes ListingService.
type ListingConfig struct {
	CacheTTL        time.Duration
	DefaultMaxValue int64
}

// ListingService serves the public tender listings, their filter facets and the price slider.
type ListingService struct {
	repo    tenderListingRepository
	cache   *CacheService
	metrics *MetricsService
	catalog *catalog.Catalog
	logger  *zap.Logger
	config  ListingConfig
	now     func() time.Time
	group   singleflight.Group
}

// NewListingService constructs a ListingService.
func NewListingService(repo tenderListingRepository, cache *CacheService, metrics *MetricsService, cat *catalog.Catalog, logger *zap.Logger, config ListingConfig) *ListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.DefaultMaxValue <= 0 {
		config.DefaultMaxValue = 10_000_000_000
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = 30 * time.Second
	}
	return &ListingService{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		catalog: cat,
		logger:  logger,
		config:  config,
		now:     time.Now,
	}
}

// NormalizeFilter fills the listing type and sort order defaults.
func NormalizeFilter(filter models.TenderFilter) models.TenderFilter {
	if !filter.Type.Valid() {
		filter.Type = models.ListingDefault
	}
	if !filter.Sort.Valid() {
		filter.Sort = models.SortNewest
		if filter.Type == models.ListingClosingSoon {
			filter.Sort = models.SortClosing
		}
	}
	return filter
}

// List returns one page of a listing. On failure the result is still returned, empty and
// carrying the failure message, together with a LISTING_UNAVAILABLE error. The boolean reports
// a cache hit.
func (s *ListingService) List(ctx context.Context, filter models.TenderFilter) (*dto.ListingResult, bool, error) {
	filter = NormalizeFilter(filter)

	key := listingCacheKey(filter)
	var cached dto.ListingResult
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	now := s.now().UTC()
	start := time.Now()
	tenders, total, err := s.repo.List(ctx, filter, now)
	s.metrics.ObserveDBQuery("tenders_list", time.Since(start))
	s.metrics.ObserveListing(filter.Type, total, err)

	result := &dto.ListingResult{
		Items:    []dto.TenderCard{},
		Page:     filter.Page,
		PageSize: models.ListingPageSize,
	}
	if err != nil {
		s.logger.Error("tender listing failed",
			zap.String("type", string(filter.Type)),
			zap.Int("page", filter.Page),
			zap.Error(err))
		appErr := appErrors.Wrap(err, appErrors.ErrListingUnavailable.Code, appErrors.ErrListingUnavailable.Status, appErrors.ErrListingUnavailable.Message)
		result.Error = appErr.Message
		return result, false, appErr
	}

	result.Items = toCards(tenders, now)
	result.TotalCount = total
	result.TotalPages = models.TotalPages(total)

	if ttl := listingCacheTTL(tenders, now, s.config.CacheTTL); ttl > 0 {
		s.cache.Set(ctx, key, result, ttl)
	}
	return result, false, nil
}

// listingCacheTTL caps ttl so a cached page expires no later than the first of its open tenders
// closes. A zero result means the page must not be cached.
func listingCacheTTL(tenders []models.Tender, now time.Time, ttl time.Duration) time.Duration {
	for i := range tenders {
		if !tenders[i].IsOpen(now) {
			continue
		}
		if d := tenders[i].BidEndTS.Sub(now); d < ttl {
			ttl = d
		}
	}
	return ttl
}

// MaxValue returns the slider maximum: the largest active tender value, or the configured
// default when no value is recorded or the lookup fails. Concurrent callers share one query.
func (s *ListingService) MaxValue(ctx context.Context) int64 {
	var cached int64
	if s.cache.Get(ctx, maxValueKey, &cached) && cached > 0 {
		return cached
	}

	v, err, _ := s.group.Do(maxValueKey, func() (interface{}, error) {
		start := time.Now()
		highest, err := s.repo.MaxValue(ctx)
		s.metrics.ObserveDBQuery("tenders_max_value", time.Since(start))
		if err != nil {
			return int64(0), err
		}
		if highest > 0 {
			s.cache.Set(ctx, maxValueKey, highest, s.config.CacheTTL)
		}
		return highest, nil
	})
	if err != nil {
		s.logger.Warn("max tender value lookup failed, using default", zap.Error(err))
		return s.config.DefaultMaxValue
	}
	if highest := v.(int64); highest > 0 {
		return highest
	}
	return s.config.DefaultMaxValue
}

// FilterOptions returns the facets of open tenders and the slider range.
func (s *ListingService) FilterOptions(ctx context.Context) (*dto.FilterOptions, bool, error) {
	var cached dto.FilterOptions
	if s.cache.Get(ctx, filterOptionsKey, &cached) {
		return &cached, true, nil
	}

	now := s.now().UTC()
	opts := &dto.FilterOptions{}
	g, gctx := errgroup.WithContext(ctx)

	facet := func(column models.FacetColumn, vocabulary []string, into *[]dto.FacetCount) {
		g.Go(func() error {
			rows, err := s.repo.Facets(gctx, column, now)
			if err != nil {
				return err
			}
			*into = mergeFacets(rows, vocabulary)
			return nil
		})
	}

	var regions, categories, tenderTypes []string
	if s.catalog != nil {
		regions, categories, tenderTypes = s.catalog.Regions(), s.catalog.Categories, s.catalog.TenderTypes
	}
	facet(models.FacetCategory, categories, &opts.Categories)
	facet(models.FacetState, regions, &opts.States)
	facet(models.FacetAuthority, nil, &opts.Authorities)
	facet(models.FacetTenderType, tenderTypes, &opts.TenderTypes)
	g.Go(func() error {
		opts.PriceRange = dto.PriceRange{Min: 0, Max: s.MaxValue(gctx)}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("filter options failed", zap.Error(err))
		return nil, false, appErrors.Wrap(err, appErrors.ErrListingUnavailable.Code, appErrors.ErrListingUnavailable.Status, "filter options could not be loaded")
	}

	s.cache.Set(ctx, filterOptionsKey, opts, s.config.CacheTTL)
	return opts, false, nil
}

// PriceRange converts between slider handles and rupee bounds. Positions win when both are
// given. Crossing handles are clamped.
func (s *ListingService) PriceRange(ctx context.Context, q dto.PriceRangeQuery) *dto.PriceRangeResponse {
	m := pricerange.New(s.MaxValue(ctx))
	res := &dto.PriceRangeResponse{MaxValue: m.MaxValue()}

	if q.MinPos != nil || q.MaxPos != nil || (q.MinPrice == nil && q.MaxPrice == nil) {
		pos := pricerange.Full()
		if q.MinPos != nil {
			pos.Min = *q.MinPos
		}
		if q.MaxPos != nil {
			pos.Max = *q.MaxPos
		}
		pos = pricerange.Clamp(pos.Min, pos.Max)
		res.MinPos, res.MaxPos = pos.Min, pos.Max
		res.MinPrice, res.MaxPrice = m.Range(pos)
		return res
	}

	minPrice, maxPrice := int64(0), m.MaxValue()
	if q.MinPrice != nil {
		minPrice = clampPrice(*q.MinPrice, m.MaxValue())
	}
	if q.MaxPrice != nil {
		maxPrice = clampPrice(*q.MaxPrice, m.MaxValue())
	}
	if minPrice > maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	var pos pricerange.Position
	if q.Legacy {
		pos = pricerange.Clamp(pricerange.LinearInverse(minPrice, m.MaxValue()), pricerange.LinearInverse(maxPrice, m.MaxValue()))
	} else {
		pos = m.Positions(minPrice, maxPrice)
	}
	res.MinPos, res.MaxPos = pos.Min, pos.Max
	res.MinPrice, res.MaxPrice = minPrice, maxPrice
	return res
}

// InvalidateListings drops every cached listing, facet and slider entry.
func (s *ListingService) InvalidateListings(ctx context.Context) {
	s.cache.Invalidate(ctx, listingCachePattern)
}

func clampPrice(v, highest int64) int64 {
	if v < 0 {
		return 0
	}
	if v > highest {
		return highest
	}
	return v
}

// mergeFacets keeps the observed counts and appends the remaining vocabulary with zero counts.
func mergeFacets(rows []models.Facet, vocabulary []string) []dto.FacetCount {
	out := make([]dto.FacetCount, 0, len(rows)+len(vocabulary))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		out = append(out, dto.FacetCount{Value: r.Value, Count: r.Count})
		seen[r.Value] = true
	}
	for _, v := range vocabulary {
		if !seen[v] {
			out = append(out, dto.FacetCount{Value: v})
		}
	}
	return out
}

func listingCacheKey(filter models.TenderFilter) string {
	raw, _ := json.Marshal(filter)
	sum := sha256.Sum256(raw)
	return listingCachePrefix + "list:" + hex.EncodeToString(sum[:12])
}

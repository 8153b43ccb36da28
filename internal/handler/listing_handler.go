package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/middleware"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

type listingService interface {
	List(ctx context.Context, filter models.TenderFilter) (*dto.ListingResult, bool, error)
	FilterOptions(ctx context.Context) (*dto.FilterOptions, bool, error)
	PriceRange(ctx context.Context, q dto.PriceRangeQuery) *dto.PriceRangeResponse
}

type exportService interface {
	Export(ctx context.Context, filter models.TenderFilter, format string) (*service.ExportFile, error)
}

// ListingHandler serves the public tender listings.
type ListingHandler struct {
	listings listingService
	exports  exportService
}

// NewListingHandler constructs a ListingHandler.
func NewListingHandler(listings listingService, exports exportService) *ListingHandler {
	return &ListingHandler{listings: listings, exports: exports}
}

// List godoc
// @Summary List tenders
// @Description Active tenders, or the listing named by type. Groups are AND-ed, values within a group OR-ed.
// @Tags Tenders
// @Produce json
// @Param type query string false "default, archive, latest or closing-soon"
// @Param sort query string false "newest, oldest, closing or value_high"
// @Param q query string false "Free text over title, reference, location and organisation"
// @Param category query string false "Comma separated categories"
// @Param state query string false "Comma separated states"
// @Param location query string false "Comma separated location fragments"
// @Param authority query string false "Comma separated authority fragments"
// @Param tender_type query string false "Comma separated tender types"
// @Param value query string false "Comma separated value label fragments"
// @Param minPrice query int false "Lower bound in rupees"
// @Param maxPrice query int false "Upper bound in rupees"
// @Param publishDateFrom query string false "YYYY-MM-DD"
// @Param publishDateTo query string false "YYYY-MM-DD"
// @Param submissionDateFrom query string false "YYYY-MM-DD"
// @Param submissionDateTo query string false "YYYY-MM-DD"
// @Param page query int false "Page, 20 tenders each"
// @Success 200 {object} response.Envelope{data=dto.ListingResult}
// @Failure 503 {object} response.Envelope{data=dto.ListingResult}
// @Router /tenders [get]
func (h *ListingHandler) List(c *gin.Context) {
	h.serveListing(c, "")
}

// Listing returns a handler for a fixed listing type.
// @Summary List tenders of one listing
// @Tags Tenders
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.ListingResult}
// @Failure 503 {object} response.Envelope{data=dto.ListingResult}
// @Router /tenders/archive [get]
// @Router /tenders/latest [get]
// @Router /tenders/closing-soon [get]
func (h *ListingHandler) Listing(listing models.ListingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serveListing(c, listing)
	}
}

func (h *ListingHandler) serveListing(c *gin.Context, listing models.ListingType) {
	filter := parseTenderFilter(c, listing)
	res, hit, err := h.listings.List(c.Request.Context(), filter)
	middleware.SetCacheHit(c, hit)
	if err != nil {
		response.Failure(c, err, res, middleware.ExtractMeta(c))
		return
	}
	response.JSON(c, http.StatusOK, res, listingPagination(res), middleware.ExtractMeta(c))
}

// Filters godoc
// @Summary Filter options
// @Description Categories, states, authorities and tender types of open tenders with counts, and the slider range.
// @Tags Tenders
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.FilterOptions}
// @Failure 503 {object} response.Envelope
// @Router /tenders/filters [get]
func (h *ListingHandler) Filters(c *gin.Context) {
	opts, hit, err := h.listings.FilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, opts, nil, middleware.ExtractMeta(c))
}

// PriceRange godoc
// @Summary Convert slider positions and rupee bounds
// @Tags Tenders
// @Produce json
// @Param minPos query int false "Left handle, 0 to 1000"
// @Param maxPos query int false "Right handle, 0 to 1000"
// @Param minPrice query int false "Lower bound in rupees"
// @Param maxPrice query int false "Upper bound in rupees"
// @Param legacy query bool false "Use the single-scale inverse of older links"
// @Success 200 {object} response.Envelope{data=dto.PriceRangeResponse}
// @Router /tenders/price-range [get]
func (h *ListingHandler) PriceRange(c *gin.Context) {
	res := h.listings.PriceRange(c.Request.Context(), parsePriceRangeQuery(c))
	response.JSON(c, http.StatusOK, res, nil)
}

// Export godoc
// @Summary Export a listing
// @Description Renders the matching tenders, up to the configured row limit, as CSV or PDF.
// @Tags Tenders
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /tenders/export [get]
func (h *ListingHandler) Export(c *gin.Context) {
	file, err := h.exports.Export(c.Request.Context(), parseTenderFilter(c, ""), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Download(c, file.Filename, file.ContentType, file.Body)
}

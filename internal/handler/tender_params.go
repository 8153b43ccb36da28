package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

const dateLayout = "2006-01-02"

// parseTenderFilter reads the listing parameters. Lists accept both repeated keys and comma
// separated values. Malformed numbers and dates are ignored rather than rejected.
func parseTenderFilter(c *gin.Context, listing models.ListingType) models.TenderFilter {
	filter := models.TenderFilter{
		Type:        listing,
		Sort:        models.SortKey(c.Query("sort")),
		Query:       strings.TrimSpace(c.Query("q")),
		Categories:  listParam(c, "category"),
		States:      listParam(c, "state"),
		Locations:   listParam(c, "location"),
		Authorities: listParam(c, "authority"),
		TenderTypes: listParam(c, "tender_type"),
		Values:      listParam(c, "value"),
		MinPrice:    amountParam(c, "minPrice"),
		MaxPrice:    amountParam(c, "maxPrice"),

		PublishedFrom: dateParam(c, "publishDateFrom"),
		PublishedTo:   dateParam(c, "publishDateTo"),
		ClosingFrom:   dateParam(c, "submissionDateFrom"),
		ClosingTo:     dateParam(c, "submissionDateTo"),

		Page: pageParam(c),
	}
	if listing == "" {
		filter.Type = models.ListingType(c.Query("type"))
	}
	return filter
}

func listParam(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func amountParam(c *gin.Context, key string) *int64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func intParam(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func dateParam(c *gin.Context, key string) *time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	d, err := time.ParseInLocation(dateLayout, raw, models.IST)
	if err != nil {
		return nil
	}
	return &d
}

func parsePriceRangeQuery(c *gin.Context) dto.PriceRangeQuery {
	legacy, _ := strconv.ParseBool(c.Query("legacy"))
	return dto.PriceRangeQuery{
		MinPos:   intParam(c, "minPos"),
		MaxPos:   intParam(c, "maxPos"),
		MinPrice: amountParam(c, "minPrice"),
		MaxPrice: amountParam(c, "maxPrice"),
		Legacy:   legacy,
	}
}

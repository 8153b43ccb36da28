package service

import (
	"strings"
	"time"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

// MatchesFilter evaluates a listing filter against one tender in memory, with the same
// predicate the listing query applies in SQL.
func MatchesFilter(filter models.TenderFilter, t models.Tender, now time.Time) bool {
	if t.Status != models.TenderStatusActive || t.BidEndTS == nil {
		return false
	}
	end := *t.BidEndTS

	switch filter.Type {
	case models.ListingArchive:
		if !end.Before(now) {
			return false
		}
	case models.ListingLatest:
		if !t.CreatedAt.After(now.Add(-24*time.Hour)) || !end.After(now) {
			return false
		}
	case models.ListingClosingSoon:
		if !end.After(now) || end.After(now.Add(24*time.Hour)) {
			return false
		}
	default:
		if !end.After(now) {
			return false
		}
	}

	if text := strings.TrimSpace(filter.Query); text != "" && !containsFold(text, t.Title, t.ReferenceNo, t.Location, t.OrganisationChain) {
		return false
	}

	if !inSet(t.Category, filter.Categories) || !inSet(t.State, filter.States) || !inSet(t.TenderType, filter.TenderTypes) {
		return false
	}
	if !anySubstring(t.Location, filter.Locations) || !anySubstring(t.Authority, filter.Authorities) || !anySubstring(t.TenderValue, filter.Values) {
		return false
	}

	if !withinValue(t.TenderValueNumeric, filter.MinPrice, filter.MaxPrice) {
		return false
	}

	if filter.PublishedFrom != nil || filter.PublishedTo != nil {
		if t.PublishedDate == nil {
			return false
		}
		day := t.PublishedDate.Format("2006-01-02")
		if filter.PublishedFrom != nil && day < filter.PublishedFrom.Format("2006-01-02") {
			return false
		}
		if filter.PublishedTo != nil && day > filter.PublishedTo.Format("2006-01-02") {
			return false
		}
	}
	if filter.ClosingFrom != nil && end.Before(*filter.ClosingFrom) {
		return false
	}
	if filter.ClosingTo != nil && !end.Before(filter.ClosingTo.AddDate(0, 0, 1)) {
		return false
	}

	return true
}

// MatchesAlert reports whether a newly published tender satisfies an alert subscription.
// Keywords are OR-ed over title, reference number, location and organisation.
func MatchesAlert(pref models.AlertPreference, t models.Tender, now time.Time) bool {
	if !pref.Enabled {
		return false
	}
	filter := models.TenderFilter{
		Type:       models.ListingDefault,
		Categories: pref.Categories,
		States:     pref.States,
		MinPrice:   pref.MinValue,
		MaxPrice:   pref.MaxValue,
	}
	if !MatchesFilter(filter, t, now) {
		return false
	}
	if len(pref.Keywords) == 0 {
		return true
	}
	for _, kw := range pref.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" && containsFold(kw, t.Title, t.ReferenceNo, t.Location, t.OrganisationChain) {
			return true
		}
	}
	return false
}

func inSet(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func anySubstring(v string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	for _, n := range needles {
		if containsFold(n, v) {
			return true
		}
	}
	return false
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func withinValue(v, lo, hi *int64) bool {
	if lo == nil && hi == nil {
		return true
	}
	if v == nil {
		return false
	}
	if lo != nil && *v < *lo {
		return false
	}
	if hi != nil && *v > *hi {
		return false
	}
	return true
}

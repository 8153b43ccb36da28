package service

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

var matchNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(v int64) *int64        { return &v }

func openTender(mutate func(*models.Tender)) models.Tender {
	t := models.Tender{
		ID:        "t",
		Title:     "Construction of community hall",
		Category:  "Construction",
		State:     "Delhi",
		Location:  "Dwarka Sector 10",
		Authority: "Delhi Development Authority",
		Status:    models.TenderStatusActive,
		BidEndTS:  ptrTime(matchNow.Add(72 * time.Hour)),
		CreatedAt: matchNow.Add(-48 * time.Hour),
	}
	if mutate != nil {
		mutate(&t)
	}
	return t
}

func TestMatchesFilterClosingSoonWindow(t *testing.T) {
	filter := models.TenderFilter{Type: models.ListingClosingSoon}

	in := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(12 * time.Hour)) })
	tooLate := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(30 * time.Hour)) })
	closed := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(-time.Hour)) })
	edge := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(24 * time.Hour)) })

	assert.True(t, MatchesFilter(filter, in, matchNow))
	assert.False(t, MatchesFilter(filter, tooLate, matchNow))
	assert.False(t, MatchesFilter(filter, closed, matchNow))
	assert.True(t, MatchesFilter(filter, edge, matchNow))
}

func TestMatchesFilterListingTypes(t *testing.T) {
	fresh := openTender(func(t *models.Tender) { t.CreatedAt = matchNow.Add(-2 * time.Hour) })
	old := openTender(nil)
	expired := openTender(func(t *models.Tender) { t.BidEndTS = ptrTime(matchNow.Add(-time.Minute)) })
	draft := openTender(func(t *models.Tender) { t.Status = models.TenderStatusDraft })

	latest := models.TenderFilter{Type: models.ListingLatest}
	assert.True(t, MatchesFilter(latest, fresh, matchNow))
	assert.False(t, MatchesFilter(latest, old, matchNow))

	archive := models.TenderFilter{Type: models.ListingArchive}
	assert.True(t, MatchesFilter(archive, expired, matchNow))
	assert.False(t, MatchesFilter(archive, old, matchNow))

	assert.True(t, MatchesFilter(models.TenderFilter{}, old, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{}, expired, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{}, draft, matchNow))
}

func TestMatchesFilterGroupsAreConjunctive(t *testing.T) {
	filter := models.TenderFilter{Categories: []string{"Construction", "IT & Software"}, States: []string{"Delhi"}}

	assert.True(t, MatchesFilter(filter, openTender(nil), matchNow))
	assert.False(t, MatchesFilter(filter, openTender(func(t *models.Tender) { t.Category = "Healthcare" }), matchNow))
	assert.False(t, MatchesFilter(filter, openTender(func(t *models.Tender) { t.State = "Mumbai" }), matchNow))
}

func TestMatchesFilterPriceBounds(t *testing.T) {
	filter := models.TenderFilter{MinPrice: ptrInt64(100000000), MaxPrice: ptrInt64(5000000000)}

	valued := func(v int64) models.Tender {
		return openTender(func(t *models.Tender) { t.TenderValueNumeric = ptrInt64(v) })
	}
	assert.False(t, MatchesFilter(filter, valued(50000000), matchNow))
	assert.True(t, MatchesFilter(filter, valued(2000000000), matchNow))
	assert.False(t, MatchesFilter(filter, valued(6000000000), matchNow))
	assert.True(t, MatchesFilter(filter, valued(100000000), matchNow))
	assert.True(t, MatchesFilter(filter, valued(5000000000), matchNow))
	assert.False(t, MatchesFilter(filter, openTender(nil), matchNow))
}

func TestMatchesFilterTextAndSubstrings(t *testing.T) {
	tender := openTender(func(t *models.Tender) {
		t.ReferenceNo = "DDA/2024/77"
		t.OrganisationChain = "DDA|Engineering Wing"
		t.TenderValue = "₹2.5 Cr"
	})

	assert.True(t, MatchesFilter(models.TenderFilter{Query: "community"}, tender, matchNow))
	assert.True(t, MatchesFilter(models.TenderFilter{Query: "dda/2024"}, tender, matchNow))
	assert.True(t, MatchesFilter(models.TenderFilter{Query: "engineering"}, tender, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{Query: "bridge"}, tender, matchNow))

	assert.True(t, MatchesFilter(models.TenderFilter{Locations: []string{"rohini", "dwarka"}}, tender, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{Authorities: []string{"NHAI"}}, tender, matchNow))
	assert.True(t, MatchesFilter(models.TenderFilter{Values: []string{"Cr"}}, tender, matchNow))
}

func TestMatchesFilterDates(t *testing.T) {
	tender := openTender(func(t *models.Tender) {
		t.PublishedDate = ptrTime(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
		t.BidEndTS = ptrTime(time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC))
	})
	day := func(d int, m time.Month) *time.Time { return ptrTime(time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)) }

	assert.True(t, MatchesFilter(models.TenderFilter{PublishedFrom: day(10, 2), PublishedTo: day(10, 2)}, tender, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{PublishedFrom: day(11, 2)}, tender, matchNow))
	assert.True(t, MatchesFilter(models.TenderFilter{ClosingTo: day(10, 3)}, tender, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{ClosingTo: day(9, 3)}, tender, matchNow))
	assert.False(t, MatchesFilter(models.TenderFilter{ClosingFrom: day(11, 3)}, tender, matchNow))
}

func TestMatchesAlert(t *testing.T) {
	pref := models.AlertPreference{
		Enabled:    true,
		Categories: pq.StringArray{"Construction"},
		Keywords:   pq.StringArray{"hall", "bridge"},
	}
	assert.True(t, MatchesAlert(pref, openTender(nil), matchNow))

	pref.Keywords = pq.StringArray{"bridge"}
	assert.False(t, MatchesAlert(pref, openTender(nil), matchNow))

	pref.Keywords = nil
	pref.Enabled = false
	assert.False(t, MatchesAlert(pref, openTender(nil), matchNow))
}

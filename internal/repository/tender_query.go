package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

const tenderColumns = `id, title, description, authority, organisation_chain, location, state, tender_category, tender_type,
        tender_value, tender_value_numeric, published_date, bid_submission_end, bid_end_ts, reference_no, status,
        created_by, created_at, updated_at`

const dateLayout = "2006-01-02"

// tenderQuery accumulates the WHERE clause of a listing. Every condition is AND-ed.
type tenderQuery struct {
	conditions []string
	args       []interface{}
}

func newTenderQuery() *tenderQuery {
	q := &tenderQuery{}
	q.add("status = $%d", models.TenderStatusActive)
	return q
}

// add appends a condition whose %d verbs all refer to the same new argument.
func (q *tenderQuery) add(condition string, arg interface{}) {
	n := len(q.args) + 1
	verbs := strings.Count(condition, "%d")
	refs := make([]interface{}, verbs)
	for i := range refs {
		refs[i] = n
	}
	q.conditions = append(q.conditions, fmt.Sprintf(condition, refs...))
	q.args = append(q.args, arg)
}

func (q *tenderQuery) exactAny(column string, values []string) {
	if len(values) == 0 {
		return
	}
	q.add(column+" = ANY($%d)", pq.Array(values))
}

func (q *tenderQuery) containsAny(column string, values []string) {
	if len(values) == 0 {
		return
	}
	patterns := make([]string, len(values))
	for i, v := range values {
		patterns[i] = containsPattern(v)
	}
	q.add(column+" ILIKE ANY($%d)", pq.Array(patterns))
}

func (q *tenderQuery) where() string {
	return "WHERE " + strings.Join(q.conditions, " AND ")
}

// buildTenderQuery translates a filter selection into the predicate of a public listing.
func buildTenderQuery(filter models.TenderFilter, now time.Time) *tenderQuery {
	q := newTenderQuery()

	switch filter.Type {
	case models.ListingArchive:
		q.add("bid_end_ts < $%d", now)
	case models.ListingLatest:
		q.add("created_at > $%d", now.Add(-24*time.Hour))
		q.add("bid_end_ts > $%d", now)
	case models.ListingClosingSoon:
		q.add("bid_end_ts > $%d", now)
		q.add("bid_end_ts <= $%d", now.Add(24*time.Hour))
	default:
		q.add("bid_end_ts > $%d", now)
	}

	if text := strings.TrimSpace(filter.Query); text != "" {
		q.add("(title ILIKE $%d OR reference_no ILIKE $%d OR location ILIKE $%d OR organisation_chain ILIKE $%d)", containsPattern(text))
	}

	q.exactAny("tender_category", filter.Categories)
	q.exactAny("state", filter.States)
	q.exactAny("tender_type", filter.TenderTypes)
	q.containsAny("location", filter.Locations)
	q.containsAny("authority", filter.Authorities)
	q.containsAny("tender_value", filter.Values)

	if filter.MinPrice != nil {
		q.add("tender_value_numeric >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q.add("tender_value_numeric <= $%d", *filter.MaxPrice)
	}

	if filter.PublishedFrom != nil {
		q.add("published_date >= $%d", filter.PublishedFrom.Format(dateLayout))
	}
	if filter.PublishedTo != nil {
		q.add("published_date <= $%d", filter.PublishedTo.Format(dateLayout))
	}
	if filter.ClosingFrom != nil {
		q.add("bid_end_ts >= $%d", *filter.ClosingFrom)
	}
	if filter.ClosingTo != nil {
		q.add("bid_end_ts < $%d", filter.ClosingTo.AddDate(0, 0, 1))
	}

	return q
}

// orderBy maps a sort key to its ORDER BY clause. id breaks ties so pages never overlap.
func orderBy(sort models.SortKey) string {
	var clause string
	switch sort {
	case models.SortOldest:
		clause = "created_at ASC"
	case models.SortClosing:
		clause = "bid_end_ts ASC"
	case models.SortValueHigh:
		clause = "tender_value_numeric DESC NULLS LAST"
	default:
		clause = "created_at DESC"
	}
	return "ORDER BY " + clause + ", id ASC"
}

// containsPattern escapes LIKE wildcards in user input and wraps it for substring matching.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

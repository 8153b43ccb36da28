package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

const (
	lakh  = 100_000
	crore = 10_000_000

	bidEndDisplayLayout = "02-Jan-2006 03:04 PM"
)

// FormatINR renders a rupee amount in Indian notation: crores and lakhs above one lakh, digit
// groups of two after the last three below it.
func FormatINR(v int64) string {
	if v < 0 {
		// -(v+1) cannot overflow, even for math.MinInt64.
		return "-" + formatRupees(uint64(-(v+1))+1)
	}
	return formatRupees(uint64(v))
}

func formatRupees(v uint64) string {
	switch {
	case v >= crore:
		return "₹" + trimDecimal(float64(v)/crore) + " Cr"
	case v >= lakh:
		return "₹" + trimDecimal(float64(v)/lakh) + " Lakh"
	default:
		return "₹" + groupIndian(strconv.FormatUint(v, 10))
	}
}

func trimDecimal(f float64) string {
	s := strconv.FormatFloat(math.Round(f*100)/100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatBidEnd renders a closing instant the way notices print it.
func FormatBidEnd(t time.Time) string {
	return t.In(models.IST).Format(bidEndDisplayLayout)
}

// toCard maps a stored tender to its listing card as seen at now.
func toCard(t models.Tender, now time.Time) dto.TenderCard {
	card := dto.TenderCard{
		ID:               t.ID,
		Title:            t.Title,
		Authority:        t.Authority,
		Location:         t.Location,
		State:            t.State,
		Category:         t.Category,
		TenderType:       t.TenderType,
		TenderValue:      t.TenderValue,
		ValueNumeric:     t.TenderValueNumeric,
		BidSubmissionEnd: t.BidSubmissionEnd,
		BidEndTS:         t.BidEndTS,
		ReferenceNo:      t.ReferenceNo,
		Status:           string(t.Status),
	}
	if t.PublishedDate != nil {
		card.PublishedDate = t.PublishedDate.Format("2006-01-02")
	}
	if card.TenderValue == "" && t.TenderValueNumeric != nil {
		card.TenderValue = FormatINR(*t.TenderValueNumeric)
	}

	if t.BidEndTS == nil {
		return card
	}
	if card.BidSubmissionEnd == "" {
		card.BidSubmissionEnd = FormatBidEnd(*t.BidEndTS)
	}
	remaining := t.BidEndTS.Sub(now)
	if remaining <= 0 {
		card.Closed = true
		return card
	}
	card.DaysLeft = int(math.Ceil(remaining.Hours() / 24))
	card.ClosingSoon = remaining <= 24*time.Hour
	return card
}

func toCards(tenders []models.Tender, now time.Time) []dto.TenderCard {
	cards := make([]dto.TenderCard, 0, len(tenders))
	for _, t := range tenders {
		cards = append(cards, toCard(t, now))
	}
	return cards
}

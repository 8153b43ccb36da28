package service

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{75000, "₹75,000"},
		{99999, "₹99,999"},
		{100000, "₹1 Lakh"},
		{2550000, "₹25.5 Lakh"},
		{10000000, "₹1 Cr"},
		{123456789, "₹12.35 Cr"},
		{10000000000, "₹1000 Cr"},
		{-75000, "-₹75,000"},
		{-1, "-₹1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.in), "value %d", tt.in)
	}
}

func TestFormatINRExtremes(t *testing.T) {
	lowest := FormatINR(math.MinInt64)
	assert.True(t, strings.HasPrefix(lowest, "-₹"), lowest)
	assert.True(t, strings.HasSuffix(lowest, " Cr"), lowest)
	assert.Equal(t, "-"+FormatINR(math.MaxInt64), lowest)
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "12,34,567", groupIndian("1234567"))
	assert.Equal(t, "1,234", groupIndian("1234"))
}

func TestToCard(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	value := int64(250000000)
	published := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	soon := now.Add(12 * time.Hour)
	card := toCard(models.Tender{ID: "t1", TenderValueNumeric: &value, PublishedDate: &published, BidEndTS: &soon, Status: models.TenderStatusActive}, now)
	assert.Equal(t, "₹25 Cr", card.TenderValue)
	assert.Equal(t, "2024-02-20", card.PublishedDate)
	assert.Equal(t, "02-Mar-2024 03:30 AM", card.BidSubmissionEnd)
	assert.Equal(t, 1, card.DaysLeft)
	assert.True(t, card.ClosingSoon)
	assert.False(t, card.Closed)

	later := now.Add(49 * time.Hour)
	card = toCard(models.Tender{BidEndTS: &later, BidSubmissionEnd: "as notified"}, now)
	assert.Equal(t, 3, card.DaysLeft)
	assert.False(t, card.ClosingSoon)
	assert.Equal(t, "as notified", card.BidSubmissionEnd)

	past := now.Add(-time.Hour)
	card = toCard(models.Tender{BidEndTS: &past}, now)
	assert.True(t, card.Closed)
	assert.Zero(t, card.DaysLeft)
}

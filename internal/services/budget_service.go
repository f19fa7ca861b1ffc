package services

import (
	"fmt"
	"strings"

	"aarav/internal/models/response_models"
	"aarav/internal/models/trip_models"
	"aarav/pkg/utils"
)

// Daily NPR rates per person by comfort tier. Deliberately coarse: the whole
// point is an honest range, not a quote.
var (
	accommodationRates = map[trip_models.ComfortTier]float64{
		trip_models.ComfortBudget:      800,
		trip_models.ComfortMid:         1500,
		trip_models.ComfortComfortable: 2500,
	}
	foodRates = map[trip_models.ComfortTier]float64{
		trip_models.ComfortBudget:      800,
		trip_models.ComfortMid:         1200,
		trip_models.ComfortComfortable: 2000,
	}
	transportRates = map[trip_models.ComfortTier]float64{
		trip_models.ComfortBudget:      300,
		trip_models.ComfortMid:         500,
		trip_models.ComfortComfortable: 800,
	}
)

const entryFeesPerDay = 500

// BudgetServiceInterface turns a profile into a rough NPR estimate. Every
// figure is a range; the assistant never quotes a fixed price.
type BudgetServiceInterface interface {
	Estimate(profile trip_models.TripProfile) response_models.BudgetBreakdown
	FormatSummary(b response_models.BudgetBreakdown) string
}

type budgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &budgetService{}
}

func (s *budgetService) Estimate(profile trip_models.TripProfile) response_models.BudgetBreakdown {
	tier := profile.Comfort
	if _, ok := accommodationRates[tier]; !ok {
		tier = trip_models.ComfortMid
	}

	days := profile.TimeDays
	if days < 1 {
		days = 1
	}
	group := 1
	if profile.Group != nil && profile.Group.Count > 0 {
		group = profile.Group.Count
	}

	// Totals scale with stay days only; group size is reported but the
	// rates are per stay, not per head.
	n := float64(days)
	stay := accommodationRates[tier] * n
	food := foodRates[tier] * n
	transport := transportRates[tier] * n
	fees := float64(entryFeesPerDay * days)

	return response_models.BudgetBreakdown{
		Stay:      utils.FormatAmountRange(stay),
		Food:      utils.FormatAmountRange(food),
		Transport: utils.FormatAmountRange(transport),
		EntryFees: utils.FormatAmountRange(fees),
		Total:     utils.FormatAmountRange(stay + food + transport + fees),
		Currency:  "NPR",
		Days:      days,
		GroupSize: group,
	}
}

func (s *budgetService) FormatSummary(b response_models.BudgetBreakdown) string {
	who := "solo"
	if b.GroupSize > 1 {
		who = fmt.Sprintf("%d people", b.GroupSize)
	}

	lines := []string{
		fmt.Sprintf("Here's a realistic %d-day estimate for %s:", b.Days, who),
		"",
		fmt.Sprintf("Stay: %s %s / night", b.Currency, b.Stay),
		fmt.Sprintf("Transport: %s %s", b.Currency, b.Transport),
		fmt.Sprintf("Entry fees: %s %s", b.Currency, b.EntryFees),
		fmt.Sprintf("Food: %s %s / day", b.Currency, b.Food),
		"",
		fmt.Sprintf("Estimated total: %s %s", b.Currency, b.Total),
		"",
		"Always a range — prices fluctuate by season and your choices.",
	}
	return strings.Join(lines, "\n")
}

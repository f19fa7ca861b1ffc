package trip_models

type ComfortTier string

const (
	ComfortBudget      ComfortTier = "budget"
	ComfortMid         ComfortTier = "mid"
	ComfortComfortable ComfortTier = "comfortable"
)

type Group struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TripProfile holds the elicited travel profile. Every field except
// Preferences is written at most once from free text: the first successfully
// parsed value wins and later mentions are ignored. Preferences accumulate as
// a sorted, deduplicated set.
type TripProfile struct {
	TimeDays      int         `json:"time_days,omitempty"`
	Group         *Group      `json:"group,omitempty"`
	Budget        *float64    `json:"budget,omitempty"`
	BudgetUnknown *bool       `json:"budget_unknown,omitempty"`
	Comfort       ComfortTier `json:"comfort,omitempty"`
	Preferences   []string    `json:"preferences,omitempty"`
}

// BudgetAnswered reports whether the budget field carries any information,
// either a value or an explicit "don't know".
func (p *TripProfile) BudgetAnswered() bool {
	return p.Budget != nil || p.BudgetUnknown != nil
}

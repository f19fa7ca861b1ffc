package response_models

// BudgetBreakdown carries formatted low–high ranges per cost component.
type BudgetBreakdown struct {
	Stay      string `json:"stay"`
	Food      string `json:"food"`
	Transport string `json:"transport"`
	EntryFees string `json:"entry_fees"`
	Total     string `json:"total"`
	Currency  string `json:"currency"`
	Days      int    `json:"days"`
	GroupSize int    `json:"group_size"`
}

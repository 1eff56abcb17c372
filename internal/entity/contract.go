package entity

import "time"

// Contract holds the contract-level fields extracted from one or more
// documents sharing a contract number. Optional numerics and dates are
// pointers; absent text fields are empty strings.
type Contract struct {
	ContractNumber string     `json:"contract_number"`
	WBSElement     string     `json:"wbs_element,omitempty"`
	Counties       string     `json:"counties,omitempty"`
	Description    string     `json:"description,omitempty"`
	DateAvailable  *time.Time `json:"date_available,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	MBEGoal        *float64   `json:"mbe_goal,omitempty"`
	WBEGoal        *float64   `json:"wbe_goal,omitempty"`
	CombinedGoal   *float64   `json:"combined_goal,omitempty"`
	BidOpeningDate *time.Time `json:"bid_opening_date,omitempty"`
	ProposalLength *float64   `json:"proposal_length,omitempty"`
	TypeOfWork     string     `json:"type_of_work,omitempty"`
	Location       string     `json:"location,omitempty"`
	EstimatedCost  *float64   `json:"estimated_cost,omitempty"`
	AwardedAmount  *float64   `json:"awarded_amount,omitempty"`
	AwardedTo      string     `json:"awarded_to,omitempty"`
	AwardDate      *time.Time `json:"award_date,omitempty"`
	SourceFilePath string     `json:"source_file_path,omitempty"`
}

package domain

import "github.com/shopspring/decimal"

// FeeParams are the inputs of a license fee quote.
type FeeParams struct {
	BaseFee     decimal.Decimal
	Territory   string
	Duration    string
	MediaType   string
	Exclusivity bool
}

// FeeComponent is one line of a fee breakdown. Value is the running
// subtotal once Multiplier has been applied.
type FeeComponent struct {
	Component  string          `json:"component"`
	Value      decimal.Decimal `json:"value"`
	Multiplier float64         `json:"multiplier"`
}

type FeeBreakdown struct {
	BaseFee               decimal.Decimal `json:"base_fee"`
	TerritoryMultiplier   float64         `json:"territory_multiplier"`
	DurationMultiplier    float64         `json:"duration_multiplier"`
	MediaTypeMultiplier   float64         `json:"media_type_multiplier"`
	ExclusivityMultiplier float64         `json:"exclusivity_multiplier"`
	TotalFee              decimal.Decimal `json:"total_fee"`
	Breakdown             []FeeComponent  `json:"breakdown"`
}

// NewProposal is the user input for a new sync license proposal.
type NewProposal struct {
	WorkID      string
	Title       string
	Licensee    string
	ProjectName string
	Territory   string
	Duration    string
	MediaType   string
	Exclusive   bool
	BaseFee     decimal.Decimal
	Notes       string
}

func (p NewProposal) FeeParams() FeeParams {
	return FeeParams{
		BaseFee:     p.BaseFee,
		Territory:   p.Territory,
		Duration:    p.Duration,
		MediaType:   p.MediaType,
		Exclusivity: p.Exclusive,
	}
}

func (p NewProposal) ExclusivityKey() ExclusivityKey {
	return ExclusivityKey{WorkID: p.WorkID, Territory: p.Territory, MediaType: p.MediaType}
}

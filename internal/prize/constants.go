package prize

// PrizeTierCount is the number of winning tiers below the loser bucket
const PrizeTierCount = 5

// Simulator reporting
const (
	// ConfidenceLevel is the coverage of the per-tier Clopper-Pearson interval
	ConfidenceLevel = 0.95
	// RatePrecision is the number of decimal places kept on reported percentages
	RatePrecision = 4
)

// Error messages
const (
	ErrMsgNoMatchingItem  = "no matching item"
	ErrMsgNegativeWeight  = "weight must not be negative"
	ErrMsgUnknownTier     = "unknown tier"
	ErrMsgDuplicateInTier = "hand assigned more than once in tier"
)

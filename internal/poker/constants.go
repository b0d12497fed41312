package poker

// HandSize is the number of cards that form a poker hand
const HandSize = 5

// Deal layout: 2 hole cards followed by 5 community cards
const (
	HoleCardCount      = 2
	CommunityCardCount = 5
	DealSize           = HoleCardCount + CommunityCardCount
)

// Numeric rank values used for straight detection
const (
	aceHighValue = 14
	wheelTopCard = 5
	royalLowCard = 10
)

// Error messages
const (
	ErrMsgUnknownHandRank = "unknown hand rank"
)

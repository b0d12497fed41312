package gacha

import "time"

// Cache configuration
const (
	CacheSize = 64
	CacheTTL  = 5 * time.Minute
)

// Error messages
const (
	ErrMsgGetGachaTypeFailed   = "failed to load gacha type"
	ErrMsgListGachaTypesFailed = "failed to list gacha types"
	ErrMsgListCandidatesFailed = "failed to list candidate items"
	ErrMsgBeginTxFailed        = "failed to begin draw transaction"
	ErrMsgLockUserFailed       = "failed to lock user"
	ErrMsgDeductPointsFailed   = "failed to deduct points"
	ErrMsgRecordPointsFailed   = "failed to record point history"
	ErrMsgRecordDrawFailed     = "failed to record draw"
	ErrMsgCommitDrawFailed     = "failed to commit draw"
	ErrMsgNoItemForTier        = "no item configured for tier"
	ErrMsgIterationsOutOfRange = "iterations must be between 100 and 1000000"
)

// Log messages
const (
	LogMsgDrawCompleted      = "Gacha draw completed"
	LogMsgDrawRejected       = "Gacha draw rejected"
	LogMsgSimulationFinished = "Gacha simulation finished"
	LogMsgCacheInvalidated   = "Gacha type cache invalidated"
)

// Draw failure reasons used as metric labels
const (
	ReasonNotFound     = "not_found"
	ReasonInactive     = "inactive"
	ReasonNoItem       = "no_item"
	ReasonInsufficient = "insufficient_points"
	ReasonUnknownUser  = "unknown_user"
)

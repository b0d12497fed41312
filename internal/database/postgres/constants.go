package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Users
const (
	ErrMsgFailedToUpsertUser       = "failed to upsert user"
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToListUsers        = "failed to list users"
	ErrMsgFailedToCountUsers       = "failed to count users"
	ErrMsgFailedToUpdatePoints     = "failed to update user points"
	ErrMsgFailedToGetUserStats     = "failed to get user stats"
	ErrMsgFailedToListHistories    = "failed to list gacha histories"
	ErrMsgFailedToListPointHistory = "failed to list point histories"
)

// Error Messages - Gacha
const (
	ErrMsgFailedToListGachaTypes   = "failed to list gacha types"
	ErrMsgFailedToGetGachaType     = "failed to get gacha type"
	ErrMsgFailedToUpsertGachaType  = "failed to upsert gacha type"
	ErrMsgFailedToListItems        = "failed to list gacha items"
	ErrMsgFailedToGetItem          = "failed to get gacha item"
	ErrMsgFailedToCreateItem       = "failed to create gacha item"
	ErrMsgFailedToUpdateItem       = "failed to update gacha item"
	ErrMsgFailedToInsertHistory    = "failed to insert gacha history"
	ErrMsgFailedToInsertPointEntry = "failed to insert point history"
	ErrMsgFailedToFindPurchase     = "failed to find purchase"
	ErrMsgInvalidStoredHand        = "invalid hand rank stored"
	ErrMsgInvalidStoredCards       = "invalid cards stored"
)

// Error Messages - Stats
const (
	ErrMsgFailedToCountDraws   = "failed to count draws"
	ErrMsgFailedToSumPurchases = "failed to sum purchased points"
	ErrMsgFailedToGroupDraws   = "failed to group draws"
	ErrMsgFailedToScanStatsRow = "failed to scan stats row"
)

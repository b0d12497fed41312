package user

import "time"

// Known-user cache sizing
const (
	UserCacheSize = 1000
	UserCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgRegisterFailed      = "failed to register user"
	ErrMsgGetUserFailed       = "failed to get user"
	ErrMsgListHistoriesFailed = "failed to list gacha histories"
	ErrMsgListItemsFailed     = "failed to list won items"
	ErrMsgGetStatsFailed      = "failed to get user stats"
	ErrMsgListUsersFailed     = "failed to list users"
	ErrMsgListPointsFailed    = "failed to list point histories"
)

// Log messages
const (
	LogMsgUserRegistered = "User registered"
)

package seed

// Error messages
const (
	ErrMsgSchemaValidationFailed = "seed file failed schema validation"
	ErrMsgLoadFailed             = "failed to load seed file"
	ErrMsgUnknownGachaRef        = "item references unknown gacha type"
	ErrMsgSaveGachaTypeFailed    = "failed to save gacha type"
	ErrMsgListItemsFailed        = "failed to list existing items"
	ErrMsgCreateItemFailed       = "failed to create item"
	ErrMsgGachaTypeNotInSeed     = "gacha type not found in seed"
)

// Log messages
const (
	LogMsgGachaTypeSeeded = "Seeded gacha type"
	LogMsgItemSeeded      = "Seeded item"
	LogMsgItemExists      = "Item already present, skipping"
)

// existingItemsPageLimit is the page size used when scanning current items
const existingItemsPageLimit = 100

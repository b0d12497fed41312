package catalog

// Error messages
const (
	ErrMsgListGachaTypesFailed  = "failed to list gacha types"
	ErrMsgUpsertGachaTypeFailed = "failed to save gacha type"
	ErrMsgListItemsFailed       = "failed to list items"
	ErrMsgGetItemFailed         = "failed to get item"
	ErrMsgCreateItemFailed      = "failed to create item"
	ErrMsgUpdateItemFailed      = "failed to update item"
	ErrMsgDeleteItemFailed      = "failed to delete item"

	ErrMsgIDRequired        = "id is required"
	ErrMsgNameRequired      = "name is required"
	ErrMsgUnknownDrawMode   = "draw mode must be poker or weighted"
	ErrMsgNegativeCost      = "point cost must not be negative"
	ErrMsgWindowInverted    = "end must be after start"
	ErrMsgUnknownRarity     = "unknown rarity"
	ErrMsgItemIDRequired    = "item id is required"
	ErrMsgEmptyGachaTypeRef = "gacha type id must not be empty"
)

// Log messages
const (
	LogMsgGachaTypeSaved   = "Gacha type saved"
	LogMsgItemCreated      = "Gacha item created"
	LogMsgItemUpdated      = "Gacha item updated"
	LogMsgItemDeactivated  = "Gacha item deactivated"
	LogMsgUnassignedHands  = "Poker gacha leaves hands unassigned; they resolve to LOSER"
	LogMsgOverlappingHands = "Poker gacha assigns hands to more than one tier; the better tier wins"
)

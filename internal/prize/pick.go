package prize

import (
	"errors"

	"github.com/osse101/GachaLab_Go/internal/utils"
)

// ErrNoMatchingItem is returned when the catalog has no candidate for a tier
var ErrNoMatchingItem = errors.New(ErrMsgNoMatchingItem)

// PickItem chooses one candidate uniformly at random
func PickItem[T any](items []T, src utils.RandomSource) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoMatchingItem
	}
	return items[utils.RandomIndex(src, len(items))], nil
}

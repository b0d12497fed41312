package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// isPgError reports whether err is a PostgreSQL error with the given code
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// wrapRollbackErr wraps pgx.ErrTxClosed so repository.SafeRollback can ignore it
func wrapRollbackErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

// handsToText converts hand ranks into their stored snake_case form
func handsToText(hands []poker.HandRank) []string {
	out := make([]string, 0, len(hands))
	for _, h := range hands {
		out = append(out, h.String())
	}
	return out
}

// textToHands parses stored hand ranks
func textToHands(values []string) ([]poker.HandRank, error) {
	out := make([]poker.HandRank, 0, len(values))
	for _, v := range values {
		h, err := poker.ParseHandRank(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredHand, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// handToText returns nil for weighted draws that have no hand
func handToText(h *poker.HandRank) *string {
	if h == nil {
		return nil
	}
	s := h.String()
	return &s
}

func textToHand(s *string) (*poker.HandRank, error) {
	if s == nil {
		return nil, nil
	}
	h, err := poker.ParseHandRank(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredHand, err)
	}
	return &h, nil
}

// cardsToJSON returns nil so an absent deal is stored as NULL
func cardsToJSON(cards []poker.Card) ([]byte, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	return json.Marshal(cards)
}

func jsonToCards(data []byte) ([]poker.Card, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var cards []poker.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredCards, err)
	}
	return cards, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a point balance change
type TransactionType string

const (
	TransactionPurchase    TransactionType = "PURCHASE"
	TransactionGacha       TransactionType = "GACHA"
	TransactionAdminAdjust TransactionType = "ADMIN_ADJUST"
)

// PointHistory is one entry in a user's point ledger
type PointHistory struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          string          `json:"user_id" db:"user_id"`
	TransactionType TransactionType `json:"transaction_type" db:"transaction_type"`
	Amount          int             `json:"amount" db:"amount"`
	BalanceAfter    int             `json:"balance_after" db:"balance_after"`
	Description     string          `json:"description" db:"description"`
	PaymentID       *string         `json:"payment_id,omitempty" db:"payment_id"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// PaymentIntent is the processor-neutral view of a payment
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret,omitempty"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PurchaseResult is returned after a purchase intent is created
type PurchaseResult struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Points          int    `json:"points"`
}

// CreditResult is returned when a payment is turned into points
type CreditResult struct {
	Points         int  `json:"points"`
	Balance        int  `json:"balance"`
	AlreadyGranted bool `json:"already_granted"`
}

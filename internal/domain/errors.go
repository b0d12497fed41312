package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Gacha errors
	ErrMsgGachaTypeNotFound = "gacha type not found"
	ErrMsgGachaTypeInactive = "gacha type is not available"
	ErrMsgZeroTotalWeight   = "total weight is zero"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Point errors
	ErrMsgInsufficientPoints = "insufficient points"

	// Payment errors
	ErrMsgPaymentNotSucceeded   = "payment has not succeeded"
	ErrMsgPaymentUserMismatch   = "payment belongs to another user"
	ErrMsgInvalidPaymentPayload = "invalid payment metadata"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Gacha errors
	ErrGachaTypeNotFound = errors.New(ErrMsgGachaTypeNotFound)
	ErrGachaTypeInactive = errors.New(ErrMsgGachaTypeInactive)
	ErrZeroTotalWeight   = errors.New(ErrMsgZeroTotalWeight)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Point errors
	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)

	// Payment errors
	ErrPaymentNotSucceeded   = errors.New(ErrMsgPaymentNotSucceeded)
	ErrPaymentUserMismatch   = errors.New(ErrMsgPaymentUserMismatch)
	ErrInvalidPaymentPayload = errors.New(ErrMsgInvalidPaymentPayload)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidBet   = "invalid bet"

	// Economy errors
	ErrMsgInsufficientPoints = "insufficient points"
	ErrMsgNotSellable        = "emoji cannot be sold"
	ErrMsgAlreadyOwned       = "already owned"
	ErrMsgNotOwned           = "not owned"

	// Blackjack errors
	ErrMsgAlreadyPlaying = "already playing blackjack"
	ErrMsgNotPlaying     = "not currently playing blackjack"

	// Stock errors
	ErrMsgStockNotFound = "invalid stock"

	// Duel errors
	ErrMsgAlreadyDueling = "already in a duel"
	ErrMsgNotDueling     = "not in a duel"

	// Dumpster errors
	ErrMsgOnCooldown = "dumpster on cooldown"
	ErrMsgBanned     = "banned from the dumpster"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidBet   = errors.New(ErrMsgInvalidBet)

	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)
	ErrNotSellable        = errors.New(ErrMsgNotSellable)
	ErrAlreadyOwned       = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned           = errors.New(ErrMsgNotOwned)

	ErrAlreadyPlaying = errors.New(ErrMsgAlreadyPlaying)
	ErrNotPlaying     = errors.New(ErrMsgNotPlaying)

	ErrStockNotFound = errors.New(ErrMsgStockNotFound)

	ErrAlreadyDueling = errors.New(ErrMsgAlreadyDueling)
	ErrNotDueling     = errors.New(ErrMsgNotDueling)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)
	ErrBanned     = errors.New(ErrMsgBanned)
)

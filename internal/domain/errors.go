package domain

import "errors"

var (
	// ErrChainRead is returned when an on-chain read fails or its result cannot be decoded
	ErrChainRead = errors.New("chain read failed")

	// ErrConfigurationLoad is returned when run settings or the profile list cannot be loaded
	ErrConfigurationLoad = errors.New("configuration load failed")

	// ErrNotificationDelivery is returned when the notification sink rejects a message
	ErrNotificationDelivery = errors.New("notification delivery failed")

	// ErrRunInProgress is returned when another screening run holds the run lease
	ErrRunInProgress = errors.New("screening run already in progress")

	// ErrLeaseLost is returned when a running screening run no longer holds the run lease
	ErrLeaseLost = errors.New("screening run lease lost")

	// ErrRunFinalized is returned when a terminal status is written to a run that is no longer running
	ErrRunFinalized = errors.New("screening run already finalized")

	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrWalletAlreadyLinked is returned when an address is already bound to another profile
	ErrWalletAlreadyLinked = errors.New("wallet already linked to another profile")

	// ErrUnauthorized is returned when a profile secret does not match
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when a handle, address or secret is malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSetting is returned when an operator setting fails validation
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidAmount is returned when a raw amount is not a non-negative base-10 integer
	ErrInvalidAmount = errors.New("invalid raw amount")
)
